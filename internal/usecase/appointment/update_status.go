package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/audit"
	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

type UpdateStatus struct {
	repo  domain.Repository
	cache *viewcache.DayViews
	audit *audit.Dispatcher
	feed  *realtime.Feed
}

func NewUpdateStatus(
	repo domain.Repository,
	cache *viewcache.DayViews,
	auditDispatcher *audit.Dispatcher,
	feed *realtime.Feed,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: auditDispatcher,
		feed:  feed,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	next domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.SetStatus(ap, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, ap.Status); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ap.BarberID, ap.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]string{"status": ap.Status},
	})

	uc.feed.Publish(ctx, realtime.Event{
		Table:    realtime.TableAppointments,
		BarberID: ap.BarberID.String(),
		Date:     ap.AppointmentDate,
	})

	return ap, nil
}
