package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

// GetAvailableSlots produces the bookable 30-minute slot starts for a barber
// and date: effective working intervals minus the grid points existing
// bookings occupy.
type GetAvailableSlots struct {
	resolver *schedule.Resolver
	repo     domain.Repository
}

func NewGetAvailableSlots(
	resolver *schedule.Resolver,
	repo domain.Repository,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		resolver: resolver,
		repo:     repo,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]string, error) {

	intervals, err := uc.resolver.WorkingIntervals(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return []string{}, nil
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return schedule.OpenSlots(intervals, bookings), nil
}
