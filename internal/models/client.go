package models

import "time"

// Client is an entry of the rubrica, the shop's client directory. No login.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	CreatedFrom string `gorm:"size:30" json:"created_from"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "rubrica" }
