package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.AvailabilityRule{},
		&models.DateException{},
		&models.Holiday{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func TestSaveWeeklyRulesReplacesPreviousState(t *testing.T) {
	db := newTestDB(t)
	barberID := uuid.New()
	uc := NewSaveWeeklyRules(db)

	old := models.AvailabilityRule{
		BarberID: barberID, Weekday: "Monday", StartTime: "08:00", EndTime: "12:00",
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := uc.Execute(context.Background(), barberID, []WeeklyRuleInput{
		{Weekday: "Monday", StartTime: "09:00", EndTime: "13:00"},
		{Weekday: "Saturday", StartTime: "09:00", EndTime: "18:00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rules []models.AvailabilityRule
	if err := db.Where("barber_id = ?", barberID).Order("weekday ASC").Find(&rules).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if len(rules) != 2 {
		t.Fatalf("expected 2 rules after replace, got %d", len(rules))
	}
	for _, r := range rules {
		if r.StartTime == "08:00" {
			t.Fatal("old rule survived the replace")
		}
	}
}

func TestSaveWeeklyRulesRejectsUnknownWeekday(t *testing.T) {
	db := newTestDB(t)
	uc := NewSaveWeeklyRules(db)

	err := uc.Execute(context.Background(), uuid.New(), []WeeklyRuleInput{
		{Weekday: "Lunedì", StartTime: "09:00", EndTime: "13:00"},
	})
	if !httperr.IsBusiness(err, "invalid_weekday") {
		t.Fatalf("expected invalid_weekday, got %v", err)
	}
}

func TestSaveExceptionsScopedToOneDate(t *testing.T) {
	db := newTestDB(t)
	barberID := uuid.New()
	uc := NewSaveExceptions(db)

	other := models.DateException{
		BarberID: barberID, Date: "2026-09-01", StartTime: "08:00", EndTime: "10:00",
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := uc.Execute(context.Background(), barberID, "2026-08-31", []IntervalInput{
		{StartTime: "10:00", EndTime: "14:00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	db.Model(&models.DateException{}).Where("barber_id = ?", barberID).Count(&count)
	if count != 2 {
		t.Fatalf("expected the other date untouched, got %d rows", count)
	}

	var saved models.DateException
	if err := db.Where("barber_id = ? AND date = ?", barberID, "2026-08-31").First(&saved).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.StartTime != "10:00" || saved.EndTime != "14:00" {
		t.Fatalf("unexpected interval: %+v", saved)
	}
}

func TestSaveExceptionsEmptyListClosesTheDay(t *testing.T) {
	db := newTestDB(t)
	barberID := uuid.New()
	uc := NewSaveExceptions(db)

	old := models.DateException{
		BarberID: barberID, Date: "2026-08-31", StartTime: "09:00", EndTime: "13:00",
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := uc.Execute(context.Background(), barberID, "2026-08-31", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	db.Model(&models.DateException{}).Where("barber_id = ? AND date = ?", barberID, "2026-08-31").Count(&count)
	if count != 0 {
		t.Fatalf("expected 0 rows, got %d", count)
	}
}

func TestSaveHolidaysValidatesDates(t *testing.T) {
	db := newTestDB(t)
	uc := NewSaveHolidays(db)

	err := uc.Execute(context.Background(), uuid.New(), []string{"31/08/2026"})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	var count int64
	db.Model(&models.Holiday{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failure must not write, got %d rows", count)
	}
}
