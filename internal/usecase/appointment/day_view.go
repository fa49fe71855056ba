package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/dto"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

// UnknownBarberName is the display fallback when no staff relation resolves.
const UnknownBarberName = "Sconosciuto"

// DayView shapes a barber's day into display-ready records, read-through
// cached per (barber, date). The cache entry is dropped whenever a change
// notification touches the day, so the view is always re-derivable from the
// store.
type DayView struct {
	repo     domain.Repository
	cache    *viewcache.DayViews
	registry *staff.Registry
}

func NewDayView(
	repo domain.Repository,
	cache *viewcache.DayViews,
	registry *staff.Registry,
) *DayView {
	return &DayView{
		repo:     repo,
		cache:    cache,
		registry: registry,
	}
}

func (uc *DayView) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]dto.AppointmentView, error) {

	if views, ok := uc.cache.Get(barberID, date); ok {
		return views, nil
	}

	aps, err := uc.repo.ListAppointmentsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	views := make([]dto.AppointmentView, 0, len(aps))
	for _, ap := range aps {
		views = append(views, uc.View(&ap))
	}

	uc.cache.Put(barberID, date, views)
	return views, nil
}

// View shapes one row. Ordering is whatever the query layer supplied; the
// shaping never reorders.
func (uc *DayView) View(ap *models.Appointment) dto.AppointmentView {
	barberName := ap.Barber.Name
	if barberName == "" {
		if m, ok := uc.registry.Get(ap.BarberID); ok {
			barberName = m.Name
		} else {
			barberName = UnknownBarberName
		}
	}

	return dto.AppointmentView{
		ID:         ap.ID,
		Start:      ap.AppointmentTime,
		End:        schedule.EndClock(ap.AppointmentTime, ap.DurationMin),
		Customer:   ap.CustomerName,
		Treatment:  ap.Service.Name,
		Duration:   ap.DurationMin,
		Price:      ap.Service.Price,
		Phone:      ap.CustomerPhone,
		BarberID:   ap.BarberID,
		BarberName: barberName,
		ServiceID:  ap.ServiceID,
		Status:     ap.Status,
	}
}
