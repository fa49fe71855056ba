package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is one recurring open interval for a weekday. A barber may
// have several rows per weekday; overlaps are allowed and never merged.
// Weekday holds the English day name ("Monday".."Sunday").
type AvailabilityRule struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	BarberID uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`

	Weekday   string `gorm:"size:10;not null" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AvailabilityRule) TableName() string { return "barbers_availabilities" }

// DateException replaces every weekly rule for its date. Not additive.
type DateException struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	BarberID uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`

	Date      string `gorm:"size:10;not null;index" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DateException) TableName() string { return "barbers_exceptions" }

// Holiday makes the barber fully unavailable on a date, whatever the rules or
// exceptions say.
type Holiday struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	BarberID uuid.UUID `gorm:"type:uuid;index" json:"barber_id"`

	Date string `gorm:"size:10;not null;index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Holiday) TableName() string { return "barbers_holidays" }
