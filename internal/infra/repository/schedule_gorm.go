package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

// ScheduleGormRepository backs the rule resolver with the three rule tables.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) HasHoliday(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Holiday{}).
		Where("barber_id = ? AND date = ?", barberID, date).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) ListExceptions(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]schedule.Interval, error) {

	var rows []models.DateException
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, schedule.Interval{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}

	return intervals, nil
}

func (r *ScheduleGormRepository) ListWeeklyRules(
	ctx context.Context,
	barberID uuid.UUID,
	weekday string,
) ([]schedule.Interval, error) {

	var rows []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, schedule.Interval{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}

	return intervals, nil
}

// Compile-time check
var _ schedule.RuleRepository = (*ScheduleGormRepository)(nil)
