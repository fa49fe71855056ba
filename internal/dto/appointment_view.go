package dto

import "github.com/google/uuid"

// AppointmentView is the display-ready record the calendar renders: clock
// strings already formatted, service and staff names resolved.
type AppointmentView struct {
	ID         uuid.UUID `json:"id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Customer   string    `json:"customer"`
	Treatment  string    `json:"treatment"`
	Duration   int       `json:"duration"`
	Price      float64   `json:"price"`
	Phone      string    `json:"phone,omitempty"`
	BarberID   uuid.UUID `json:"barber_id"`
	BarberName string    `json:"barber_name"`
	ServiceID  uuid.UUID `json:"service_id"`
	Status     string    `json:"status"`
}
