package appointment

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/audit"
	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

var clockPattern = regexp.MustCompile(`^[0-2][0-9]:[0-5][0-9]$`)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Staff     staff.Selector
	ServiceID uuid.UUID

	Date string // YYYY-MM-DD
	Time string // HH:MM

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

func (in CreateAppointmentInput) validate() error {
	if in.CustomerName == "" || in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("invalid_request")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if !clockPattern.MatchString(in.Time) {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment books a slot. The "any staff" choice is resolved here,
// exactly once: the stored row always carries a concrete barber. The service
// duration is frozen onto the row and stays authoritative from then on.
type CreateAppointment struct {
	repo     domain.Repository
	resolver *schedule.Resolver
	registry *staff.Registry
	cache    *viewcache.DayViews
	audit    *audit.Dispatcher
	feed     *realtime.Feed
}

func NewCreateAppointment(
	repo domain.Repository,
	resolver *schedule.Resolver,
	registry *staff.Registry,
	cache *viewcache.DayViews,
	auditDispatcher *audit.Dispatcher,
	feed *realtime.Feed,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		resolver: resolver,
		registry: registry,
		cache:    cache,
		audit:    auditDispatcher,
		feed:     feed,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barberID, err := uc.resolveStaff(ctx, in.Staff, in.Date, in.Time, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// Keeps the rubrica current; the appointment itself carries the identity
	// the form submitted, not whatever the directory had on file.
	if _, err := uc.repo.GetOrCreateClient(
		ctx,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID:        barberID,
		ServiceID:       service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		DurationMin:     service.DurationMin,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(barberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	uc.feed.Publish(ctx, realtime.Event{
		Table:    realtime.TableAppointments,
		BarberID: barberID.String(),
		Date:     in.Date,
	})

	return ap, nil
}

// resolveStaff picks the concrete barber for the booking: the requested one
// when the whole range is free, or the first registry member who can take it
// when "any" was chosen.
func (uc *CreateAppointment) resolveStaff(
	ctx context.Context,
	selector staff.Selector,
	date string,
	start string,
	durationMin int,
) (uuid.UUID, error) {

	candidates := selector.Candidates(uc.registry)
	if len(candidates) == 0 {
		if selector.IsAny() {
			return uuid.Nil, httperr.ErrBusiness("barber_not_found")
		}

		// The registry snapshot can lag a freshly added barber; check the
		// store before rejecting.
		barber, err := uc.repo.GetBarber(ctx, selector.ID())
		if err != nil {
			return uuid.Nil, httperr.ErrBusiness("barber_not_found")
		}
		candidates = []staff.Member{{
			ID:       barber.ID,
			Name:     barber.Name,
			ImageURL: barber.ImageURL,
		}}
	}

	for _, member := range candidates {
		intervals, err := uc.resolver.WorkingIntervals(ctx, member.ID, date)
		if err != nil {
			return uuid.Nil, err
		}

		bookings, err := uc.repo.ListBookingsForDay(ctx, member.ID, date)
		if err != nil {
			return uuid.Nil, err
		}

		if schedule.RangeFree(intervals, bookings, start, durationMin) {
			return member.ID, nil
		}
	}

	return uuid.Nil, httperr.ErrBusiness("time_conflict")
}
