package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment stores its occupied range as date + time strings, minute
// precision, always inside a single calendar date. BarberID is always a
// concrete barber: the "any staff" choice is resolved before the row exists.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AppointmentDate string `gorm:"size:10;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`
	DurationMin     int    `json:"duration_min"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Status string `gorm:"size:20;default:'in attesa'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "appointments" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
