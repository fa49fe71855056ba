package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

// Repository is the persistence port of the booking flows. Dates cross it as
// "YYYY-MM-DD" strings and times as "HH:MM", matching the stored columns.
type Repository interface {
	// -------- Barbers / Services --------
	GetBarber(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// ListAppointmentsForDay returns the day's rows with service and barber
	// relations loaded, ordered by start time ascending.
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uuid.UUID,
		date string,
	) ([]models.Appointment, error)

	// ListBookingsForDay returns just the occupied ranges the conflict filter
	// needs. Cancelled appointments do not occupy their slot.
	ListBookingsForDay(
		ctx context.Context,
		barberID uuid.UUID,
		date string,
	) ([]schedule.Booking, error)

	// -------- Appointment (mutations) --------
	UpdateAppointmentTime(
		ctx context.Context,
		id uuid.UUID,
		date string,
		start string,
	) error

	UpdateAppointmentStatus(
		ctx context.Context,
		id uuid.UUID,
		status string,
	) error

	// -------- Rubrica --------
	// GetOrCreateClient deduplicates by phone. An empty phone never matches an
	// existing entry; it always creates a fresh one.
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Transactions (cash register) --------
	HasTransaction(
		ctx context.Context,
		appointmentID uuid.UUID,
	) (bool, error)

	// SavePayment inserts the transaction and moves the appointment to the paid
	// status in one storage transaction, so a failure leaves neither half.
	SavePayment(
		ctx context.Context,
		tr *models.Transaction,
		status string,
	) error

	ListTransactionsForDay(
		ctx context.Context,
		date string,
	) ([]models.Transaction, error)
}
