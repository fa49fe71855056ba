package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

const monday = "2026-08-31"

type createFixture struct {
	repo      *fakeRepo
	rules     *fakeRules
	uc        *CreateAppointment
	serviceID uuid.UUID
	barberA   uuid.UUID
	barberB   uuid.UUID
}

func newCreateFixture() *createFixture {
	repo := newFakeRepo()

	serviceID := uuid.New()
	repo.services[serviceID] = &models.Service{
		ID:          serviceID,
		Name:        "Taglio",
		Price:       25,
		DurationMin: 30,
	}

	barberA := uuid.New()
	barberB := uuid.New()
	repo.barbers[barberA] = &models.Barber{ID: barberA, Name: "Marco"}
	repo.barbers[barberB] = &models.Barber{ID: barberB, Name: "Giulio"}

	registry := staff.NewStaticRegistry(
		staff.Member{ID: barberA, Name: "Marco"},
		staff.Member{ID: barberB, Name: "Giulio"},
	)

	workday := []schedule.Interval{{Start: "09:00", End: "13:00"}}
	rules := &fakeRules{weekly: map[string][]schedule.Interval{
		barberA.String() + "|Monday": workday,
		barberB.String() + "|Monday": workday,
	}}

	uc := NewCreateAppointment(repo, schedule.NewResolver(rules), registry, viewcache.New(), nil, nil)

	return &createFixture{
		repo:      repo,
		rules:     rules,
		uc:        uc,
		serviceID: serviceID,
		barberA:   barberA,
		barberB:   barberB,
	}
}

func (f *createFixture) input(sel staff.Selector) CreateAppointmentInput {
	return CreateAppointmentInput{
		Staff:        sel,
		ServiceID:    f.serviceID,
		Date:         monday,
		Time:         "10:00",
		CustomerName: "Luca",
	}
}

func TestCreateAppointmentFreezesServiceDuration(t *testing.T) {
	f := newCreateFixture()

	ap, err := f.uc.Execute(context.Background(), f.input(staff.Specific(f.barberA)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.BarberID != f.barberA {
		t.Fatalf("barber = %s, want %s", ap.BarberID, f.barberA)
	}
	if ap.DurationMin != 30 {
		t.Fatalf("duration = %d, want 30", ap.DurationMin)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want %q", ap.Status, domain.StatusPending)
	}
	if _, ok := f.repo.appointments[ap.ID]; !ok {
		t.Fatal("appointment was not persisted")
	}
}

func TestCreateAppointmentAnyStaffPicksFirstFreeBarber(t *testing.T) {
	f := newCreateFixture()
	f.repo.bookings[bookingKey(f.barberA, monday)] = []schedule.Booking{
		{Start: "10:00", DurationMin: 30},
	}

	ap, err := f.uc.Execute(context.Background(), f.input(staff.Any()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.BarberID != f.barberB {
		t.Fatalf("barber = %s, want the free one %s", ap.BarberID, f.barberB)
	}
}

func TestCreateAppointmentConflictWhenNobodyIsFree(t *testing.T) {
	f := newCreateFixture()
	busy := []schedule.Booking{{Start: "10:00", DurationMin: 30}}
	f.repo.bookings[bookingKey(f.barberA, monday)] = busy
	f.repo.bookings[bookingKey(f.barberB, monday)] = busy

	_, err := f.uc.Execute(context.Background(), f.input(staff.Any()))
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
	if len(f.repo.appointments) != 0 {
		t.Fatalf("expected no rows, got %d", len(f.repo.appointments))
	}
}

func TestCreateAppointmentRejectsBusySpecificBarber(t *testing.T) {
	f := newCreateFixture()
	f.repo.bookings[bookingKey(f.barberA, monday)] = []schedule.Booking{
		{Start: "10:00", DurationMin: 30},
	}

	_, err := f.uc.Execute(context.Background(), f.input(staff.Specific(f.barberA)))
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestCreateAppointmentOutsideWorkingHours(t *testing.T) {
	f := newCreateFixture()

	in := f.input(staff.Specific(f.barberA))
	in.Time = "14:00"

	_, err := f.uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestCreateAppointmentInputValidation(t *testing.T) {
	f := newCreateFixture()

	cases := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		{"missing name", func(in *CreateAppointmentInput) { in.CustomerName = "" }, "invalid_request"},
		{"missing date", func(in *CreateAppointmentInput) { in.Date = "" }, "invalid_request"},
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "31/08/2026" }, "invalid_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "9:00" }, "invalid_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := f.input(staff.Specific(f.barberA))
			tc.mutate(&in)

			_, err := f.uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestCreateAppointmentKeepsSubmittedCustomerIdentity(t *testing.T) {
	f := newCreateFixture()
	f.repo.clients = append(f.repo.clients, &models.Client{
		CustomerName: "Luca",
	})

	in := f.input(staff.Specific(f.barberA))
	in.CustomerName = "Giorgio"
	in.CustomerPhone = ""

	ap, err := f.uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.CustomerName != "Giorgio" {
		t.Fatalf("customer = %q, want the submitted name", ap.CustomerName)
	}
	if len(f.repo.clients) != 2 {
		t.Fatalf("expected a fresh rubrica entry, got %d total", len(f.repo.clients))
	}
}

func TestCreateAppointmentFallsBackToStoreForFreshBarber(t *testing.T) {
	f := newCreateFixture()

	// In the store with working hours, but the registry snapshot predates him.
	barberC := uuid.New()
	f.repo.barbers[barberC] = &models.Barber{ID: barberC, Name: "Pietro"}
	f.rules.weekly[barberC.String()+"|Monday"] = []schedule.Interval{
		{Start: "09:00", End: "13:00"},
	}

	ap, err := f.uc.Execute(context.Background(), f.input(staff.Specific(barberC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.BarberID != barberC {
		t.Fatalf("barber = %s, want %s", ap.BarberID, barberC)
	}
}

func TestCreateAppointmentUnknownBarber(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Execute(context.Background(), f.input(staff.Specific(uuid.New())))
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	f := newCreateFixture()

	in := f.input(staff.Specific(f.barberA))
	in.ServiceID = uuid.New()

	_, err := f.uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}
