package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:255;not null" json:"message"`

	AppointmentID *uint `json:"appointment_id"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
