package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/audit"
	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/dto"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	AppointmentID uuid.UUID
	Date          string  // target date, YYYY-MM-DD
	DeltaY        float64 // accumulated drag displacement in pixels
}

// ======================================================
// USE CASE
// ======================================================

// RescheduleAppointment is the commit path of the drag gesture: snap, clamp,
// one persistence update, then the single sanctioned optimistic patch of the
// cached day view. A failed write leaves both the row and the cache at their
// pre-drag values.
type RescheduleAppointment struct {
	repo  domain.Repository
	view  *DayView
	cache *viewcache.DayViews
	audit *audit.Dispatcher
	feed  *realtime.Feed
}

func NewRescheduleAppointment(
	repo domain.Repository,
	view *DayView,
	cache *viewcache.DayViews,
	auditDispatcher *audit.Dispatcher,
	feed *realtime.Feed,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		view:  view,
		cache: cache,
		audit: auditDispatcher,
		feed:  feed,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = ap.AppointmentDate
	}

	session := schedule.NewDragSession(ap.AppointmentTime)
	session.Begin()
	session.Move(in.DeltaY)

	newStart, moved := session.Drop()
	if !moved {
		// cancelled gesture: no persistence, no cache change
		view := uc.view.View(ap)
		return &view, nil
	}

	if err := uc.repo.UpdateAppointmentTime(ctx, ap.ID, date, newStart); err != nil {
		session.Failed()
		return nil, err
	}
	session.Committed(newStart)

	oldDate := ap.AppointmentDate
	if err := domain.MoveTo(ap, date, newStart); err != nil {
		return nil, err
	}

	uc.patchCachedView(ap.BarberID, oldDate, date, uc.view.View(ap))

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]string{"date": date, "start": newStart},
	})

	uc.feed.Publish(ctx, realtime.Event{
		Table:    realtime.TableAppointments,
		BarberID: ap.BarberID.String(),
		Date:     date,
	})

	view := uc.view.View(ap)
	return &view, nil
}

// patchCachedView applies the optimistic update in place when the appointment
// stayed on its day; a cross-day move just drops both day views and lets the
// next read rebuild them.
func (uc *RescheduleAppointment) patchCachedView(
	barberID uuid.UUID,
	oldDate string,
	newDate string,
	updated dto.AppointmentView,
) {
	if oldDate != newDate {
		uc.cache.Invalidate(barberID, oldDate)
		uc.cache.Invalidate(barberID, newDate)
		return
	}

	views, ok := uc.cache.Get(barberID, newDate)
	if !ok {
		return
	}

	patched := make([]dto.AppointmentView, len(views))
	copy(patched, views)
	for i := range patched {
		if patched[i].ID == updated.ID {
			patched[i] = updated
		}
	}

	uc.cache.Put(barberID, newDate, patched)
}
