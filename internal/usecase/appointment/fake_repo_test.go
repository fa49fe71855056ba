package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	barbers      map[uuid.UUID]*models.Barber
	services     map[uuid.UUID]*models.Service
	appointments map[uuid.UUID]*models.Appointment
	bookings     map[string][]schedule.Booking // barberID|date
	clients      []*models.Client
	paid         map[uuid.UUID]bool

	createTxErr   error
	updateTimeErr error

	timeUpdates   int
	statusUpdates []string
	createdTx     []*models.Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[uuid.UUID]*models.Barber),
		services:     make(map[uuid.UUID]*models.Service),
		appointments: make(map[uuid.UUID]*models.Appointment),
		bookings:     make(map[string][]schedule.Booking),
		paid:         make(map[uuid.UUID]bool),
	}
}

func bookingKey(barberID uuid.UUID, date string) string {
	return barberID.String() + "|" + date
}

func (f *fakeRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uuid.UUID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.AppointmentDate == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, barberID uuid.UUID, date string) ([]schedule.Booking, error) {
	return f.bookings[bookingKey(barberID, date)], nil
}

func (f *fakeRepo) UpdateAppointmentTime(_ context.Context, id uuid.UUID, date, start string) error {
	if f.updateTimeErr != nil {
		return f.updateTimeErr
	}
	f.timeUpdates++
	if ap, ok := f.appointments[id]; ok {
		ap.AppointmentDate = date
		ap.AppointmentTime = start
	}
	return nil
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uuid.UUID, status string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	if ap, ok := f.appointments[id]; ok {
		ap.Status = status
	}
	return nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	if phone != "" {
		for _, cl := range f.clients {
			if cl.CustomerPhone == phone {
				return cl, nil
			}
		}
	}

	cl := &models.Client{
		CustomerName:  name,
		CustomerPhone: phone,
		CustomerEmail: email,
	}
	f.clients = append(f.clients, cl)
	return cl, nil
}

func (f *fakeRepo) HasTransaction(_ context.Context, appointmentID uuid.UUID) (bool, error) {
	return f.paid[appointmentID], nil
}

func (f *fakeRepo) SavePayment(_ context.Context, tr *models.Transaction, status string) error {
	if f.createTxErr != nil {
		return f.createTxErr
	}
	f.paid[tr.AppointmentID] = true
	f.createdTx = append(f.createdTx, tr)
	f.statusUpdates = append(f.statusUpdates, status)
	if ap, ok := f.appointments[tr.AppointmentID]; ok {
		ap.Status = status
	}
	return nil
}

func (f *fakeRepo) ListTransactionsForDay(_ context.Context, _ string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tr := range f.createdTx {
		out = append(out, *tr)
	}
	return out, nil
}

// fakeRules implements schedule.RuleRepository with fixed weekly intervals.
type fakeRules struct {
	weekly map[string][]schedule.Interval // barberID|weekday
}

func (f *fakeRules) HasHoliday(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (f *fakeRules) ListExceptions(_ context.Context, _ uuid.UUID, _ string) ([]schedule.Interval, error) {
	return nil, nil
}

func (f *fakeRules) ListWeeklyRules(_ context.Context, barberID uuid.UUID, weekday string) ([]schedule.Interval, error) {
	return f.weekly[barberID.String()+"|"+weekday], nil
}
