package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the cash-register record of a paid appointment. The unique
// index on AppointmentID enforces one payment per appointment at the store
// level; the application pre-check is only the friendly error path.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	BarberID      uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`
	ServiceID     uuid.UUID `gorm:"type:uuid" json:"service_id"`

	PaymentMethod string  `gorm:"size:30;not null" json:"payment_method"`
	Price         float64 `json:"price"`
	Discount      float64 `json:"discount"`

	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
