package staff

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/models"
)

// Member is the staff abstraction the rest of the app depends on instead of
// scattered barber-id literals.
type Member struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
}

// Registry caches the barbers table and hands out members to whichever
// component needs one. Reload replaces the whole snapshot.
type Registry struct {
	db *gorm.DB

	mu      sync.RWMutex
	members []Member
	byID    map[uuid.UUID]Member
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		db:   db,
		byID: make(map[uuid.UUID]Member),
	}
}

// NewStaticRegistry builds a registry from a fixed member list, with no
// backing table. Used where the staff set is configuration, not data.
func NewStaticRegistry(members ...Member) *Registry {
	byID := make(map[uuid.UUID]Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return &Registry{members: members, byID: byID}
}

func (r *Registry) Reload(ctx context.Context) error {
	var rows []models.Barber
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return err
	}

	members := make([]Member, 0, len(rows))
	byID := make(map[uuid.UUID]Member, len(rows))
	for _, b := range rows {
		m := Member{ID: b.ID, Name: b.Name, ImageURL: b.ImageURL}
		members = append(members, m)
		byID[b.ID] = m
	}

	r.mu.Lock()
	r.members = members
	r.byID = byID
	r.mu.Unlock()

	return nil
}

func (r *Registry) List() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Registry) Get(id uuid.UUID) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok
}
