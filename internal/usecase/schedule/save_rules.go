package schedule

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
)

var (
	clockPattern = regexp.MustCompile(`^[0-2][0-9]:[0-5][0-9]$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	validWeekdays = map[string]bool{
		"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
		"Friday": true, "Saturday": true, "Sunday": true,
	}
)

type IntervalInput struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WeeklyRuleInput struct {
	Weekday   string `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func validInterval(start, end string) bool {
	return clockPattern.MatchString(start) && clockPattern.MatchString(end)
}

// ======================================================
// SAVE USE CASES
// ======================================================

// Rule configuration saves replace the previous state wholesale: delete every
// existing row for the scope, then reinsert what the form sent. No patching.

type SaveWeeklyRules struct {
	db *gorm.DB
}

func NewSaveWeeklyRules(db *gorm.DB) *SaveWeeklyRules {
	return &SaveWeeklyRules{db: db}
}

func (uc *SaveWeeklyRules) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	rules []WeeklyRuleInput,
) error {

	for _, r := range rules {
		if !validWeekdays[r.Weekday] {
			return httperr.ErrBusiness("invalid_weekday")
		}
		if !validInterval(r.StartTime, r.EndTime) {
			return httperr.ErrBusiness("invalid_time")
		}
	}

	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}

		var toCreate []models.AvailabilityRule
		for _, r := range rules {
			toCreate = append(toCreate, models.AvailabilityRule{
				BarberID:  barberID,
				Weekday:   r.Weekday,
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type SaveExceptions struct {
	db *gorm.DB
}

func NewSaveExceptions(db *gorm.DB) *SaveExceptions {
	return &SaveExceptions{db: db}
}

func (uc *SaveExceptions) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
	intervals []IntervalInput,
) error {

	if !datePattern.MatchString(date) {
		return httperr.ErrBusiness("invalid_date")
	}
	for _, iv := range intervals {
		if !validInterval(iv.StartTime, iv.EndTime) {
			return httperr.ErrBusiness("invalid_time")
		}
	}

	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ? AND date = ?", barberID, date).
			Delete(&models.DateException{}).Error; err != nil {
			return err
		}

		var toCreate []models.DateException
		for _, iv := range intervals {
			toCreate = append(toCreate, models.DateException{
				BarberID:  barberID,
				Date:      date,
				StartTime: iv.StartTime,
				EndTime:   iv.EndTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type SaveHolidays struct {
	db *gorm.DB
}

func NewSaveHolidays(db *gorm.DB) *SaveHolidays {
	return &SaveHolidays{db: db}
}

func (uc *SaveHolidays) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	dates []string,
) error {

	for _, d := range dates {
		if !datePattern.MatchString(d) {
			return httperr.ErrBusiness("invalid_date")
		}
	}

	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.Holiday{}).Error; err != nil {
			return err
		}

		var toCreate []models.Holiday
		for _, d := range dates {
			toCreate = append(toCreate, models.Holiday{
				BarberID: barberID,
				Date:     d,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
