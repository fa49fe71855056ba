package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbers / Services
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where(
			"barber_id = ? AND appointment_date = ?",
			barberID, date,
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]schedule.Booking, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_time", "duration_min").
		Where(
			"barber_id = ? AND appointment_date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	bookings := make([]schedule.Booking, 0, len(aps))
	for _, ap := range aps {
		bookings = append(bookings, schedule.Booking{
			Start:       ap.AppointmentTime,
			DurationMin: ap.DurationMin,
		})
	}

	return bookings, nil
}

// UpdateAppointmentTime writes date and start in a single update, the only
// persistence call of a reschedule commit. Last write wins across sessions.
func (r *AppointmentGormRepository) UpdateAppointmentTime(
	ctx context.Context,
	id uuid.UUID,
	date string,
	start string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"appointment_date": date,
			"appointment_time": start,
		}).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// --------------------------------------------------
// Rubrica
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	// Phone is the dedup key; a phoneless booking gets its own entry instead
	// of matching some other phoneless client.
	if phone != "" {
		var client models.Client
		err := r.db.WithContext(ctx).
			Where("customer_phone = ?", phone).
			First(&client).Error

		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	client := models.Client{
		CustomerName:  name,
		CustomerPhone: phone,
		CustomerEmail: email,
		CreatedFrom:   "booking",
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *AppointmentGormRepository) HasTransaction(
	ctx context.Context,
	appointmentID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// SavePayment couples the transaction row and the status move: either both
// land or neither does. A duplicate payment fails on the unique index and
// rolls the status update back with it.
func (r *AppointmentGormRepository) SavePayment(
	ctx context.Context,
	tr *models.Transaction,
	status string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tr).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).
			Where("id = ?", tr.AppointmentID).
			Update("status", status).Error
	})
}

func (r *AppointmentGormRepository) ListTransactionsForDay(
	ctx context.Context,
	date string,
) ([]models.Transaction, error) {

	var trs []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("DATE(completed_at) = ?", date).
		Order("completed_at ASC").
		Find(&trs).Error; err != nil {
		return nil, err
	}

	return trs, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
