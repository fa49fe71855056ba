package viewcache

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/barbieri-app/booking-dashboard/internal/dto"
)

const defaultSize = 256

// DayViews is the read-through cache of per-day calendar views, keyed by
// barber and date. It is disposable by design: any external change notification
// drops the whole key and the next read recomputes it from the store. The one
// sanctioned in-place write is the optimistic patch after a committed
// reschedule.
type DayViews struct {
	cache *lru.Cache[string, []dto.AppointmentView]
}

func New() *DayViews {
	cache, _ := lru.New[string, []dto.AppointmentView](defaultSize)
	return &DayViews{cache: cache}
}

func key(barberID uuid.UUID, date string) string {
	return barberID.String() + "|" + date
}

func (d *DayViews) Get(barberID uuid.UUID, date string) ([]dto.AppointmentView, bool) {
	return d.cache.Get(key(barberID, date))
}

func (d *DayViews) Put(barberID uuid.UUID, date string, views []dto.AppointmentView) {
	d.cache.Add(key(barberID, date), views)
}

// Invalidate drops one day view; the full refresh happens lazily on next read.
func (d *DayViews) Invalidate(barberID uuid.UUID, date string) {
	d.cache.Remove(key(barberID, date))
}

// Purge drops everything, for notifications that cannot be scoped.
func (d *DayViews) Purge() {
	d.cache.Purge()
}
