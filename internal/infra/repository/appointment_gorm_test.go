package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

	err = db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AvailabilityRule{},
		&models.DateException{},
		&models.Holiday{},
		&models.Transaction{},
		&models.Client{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedBarberAndService(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()

	barber := models.Barber{Name: "Marco"}
	if err := db.Create(&barber).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}

	service := models.Service{Name: "Taglio", Price: 25, DurationMin: 30}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	return barber.ID, service.ID
}

func seedAppointmentRow(
	t *testing.T,
	db *gorm.DB,
	barberID, serviceID uuid.UUID,
	date, start, status string,
) *models.Appointment {
	t.Helper()

	ap := models.Appointment{
		BarberID:        barberID,
		ServiceID:       serviceID,
		AppointmentDate: date,
		AppointmentTime: start,
		DurationMin:     30,
		CustomerName:    "Luca",
		CustomerPhone:   "3331112222",
		Status:          status,
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return &ap
}

func TestListAppointmentsForDayOrdersByStartTime(t *testing.T) {
	db := newTestDB(t)
	barberID, serviceID := seedBarberAndService(t, db)
	repo := NewAppointmentGormRepository(db)

	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "15:00", "confermato")
	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "09:00", "in attesa")
	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "11:30", "in attesa")
	seedAppointmentRow(t, db, barberID, serviceID, "2026-09-01", "08:00", "in attesa")

	aps, err := repo.ListAppointmentsForDay(context.Background(), barberID, "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(aps) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(aps))
	}
	for i, want := range []string{"09:00", "11:30", "15:00"} {
		if aps[i].AppointmentTime != want {
			t.Fatalf("row %d start = %q, want %q", i, aps[i].AppointmentTime, want)
		}
	}
	if aps[0].Barber.Name != "Marco" || aps[0].Service.Name != "Taglio" {
		t.Fatalf("relations not loaded: %+v", aps[0])
	}
}

func TestListBookingsForDaySkipsCancelled(t *testing.T) {
	db := newTestDB(t)
	barberID, serviceID := seedBarberAndService(t, db)
	repo := NewAppointmentGormRepository(db)

	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "09:00", "in attesa")
	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "10:00", "cancellato")
	seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "11:00", "confermato")

	bookings, err := repo.ListBookingsForDay(context.Background(), barberID, "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].Start != "09:00" || bookings[1].Start != "11:00" {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}
}

func TestUpdateAppointmentTimeWritesDateAndStartTogether(t *testing.T) {
	db := newTestDB(t)
	barberID, serviceID := seedBarberAndService(t, db)
	repo := NewAppointmentGormRepository(db)

	ap := seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "09:00", "in attesa")

	err := repo.UpdateAppointmentTime(context.Background(), ap.ID, "2026-09-01", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetAppointment(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.AppointmentDate != "2026-09-01" || got.AppointmentTime != "10:30" {
		t.Fatalf("row = %s %s, want 2026-09-01 10:30", got.AppointmentDate, got.AppointmentTime)
	}
}

func TestGetOrCreateClientDeduplicatesByPhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	first, err := repo.GetOrCreateClient(context.Background(), "Luca", "3331112222", "luca@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second, err := repo.GetOrCreateClient(context.Background(), "Luca B.", "3331112222", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same rubrica entry, got %d and %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 rubrica row, got %d", count)
	}
}

func TestGetOrCreateClientNeverMatchesOnEmptyPhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	first, err := repo.GetOrCreateClient(context.Background(), "Luca", "", "")
	if err != nil {
		t.Fatalf("first phoneless entry: %v", err)
	}

	second, err := repo.GetOrCreateClient(context.Background(), "Giorgio", "", "")
	if err != nil {
		t.Fatalf("second phoneless entry: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("phoneless bookings must not share a rubrica entry")
	}
	if second.CustomerName != "Giorgio" {
		t.Fatalf("name = %q, want Giorgio", second.CustomerName)
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 rubrica rows, got %d", count)
	}
}

func TestSavePaymentUniquePerAppointment(t *testing.T) {
	db := newTestDB(t)
	barberID, serviceID := seedBarberAndService(t, db)
	repo := NewAppointmentGormRepository(db)

	ap := seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", "09:00", "confermato")

	tr := &models.Transaction{
		AppointmentID: ap.ID,
		BarberID:      barberID,
		ServiceID:     serviceID,
		PaymentMethod: "contanti",
		Price:         25,
		CompletedAt:   time.Now(),
	}
	if err := repo.SavePayment(context.Background(), tr, "pagato"); err != nil {
		t.Fatalf("first payment: %v", err)
	}

	has, err := repo.HasTransaction(context.Background(), ap.ID)
	if err != nil || !has {
		t.Fatalf("HasTransaction = %v, %v; want true, nil", has, err)
	}

	got, err := repo.GetAppointment(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != "pagato" {
		t.Fatalf("status = %q, want pagato", got.Status)
	}

	dup := &models.Transaction{
		AppointmentID: ap.ID,
		BarberID:      barberID,
		ServiceID:     serviceID,
		PaymentMethod: "carta",
		Price:         25,
		CompletedAt:   time.Now(),
	}
	if err := repo.SavePayment(context.Background(), dup, "pagato"); err == nil {
		t.Fatal("second payment for the same appointment must violate the unique index")
	}

	var count int64
	db.Model(&models.Transaction{}).Where("appointment_id = ?", ap.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 transaction row after the rollback, got %d", count)
	}
}

func TestListTransactionsForDay(t *testing.T) {
	db := newTestDB(t)
	barberID, serviceID := seedBarberAndService(t, db)
	repo := NewAppointmentGormRepository(db)

	day := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	other := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for i, completed := range []time.Time{day, day.Add(time.Hour), other} {
		ap := seedAppointmentRow(t, db, barberID, serviceID, "2026-08-31", []string{"09:00", "10:00", "11:00"}[i], "pagato")
		tr := &models.Transaction{
			AppointmentID: ap.ID,
			BarberID:      barberID,
			ServiceID:     serviceID,
			PaymentMethod: "contanti",
			Price:         25,
			CompletedAt:   completed,
		}
		if err := repo.SavePayment(context.Background(), tr, "pagato"); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	trs, err := repo.ListTransactionsForDay(context.Background(), "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(trs))
	}
}
