package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	ImageURL string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barber) TableName() string { return "barbers" }

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
