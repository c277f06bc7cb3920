package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	Date string `gorm:"size:20;not null" json:"date"`
	Time string `gorm:"size:20;not null" json:"time"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	UserID *uint `json:"user_id"`
	User   User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Phone number as submitted at booking time. Fixed at creation:
	// later profile edits must not rewrite the contact shown on past
	// bookings. Empty on rows that predate the column.
	PhoneSnapshot string `gorm:"size:50" json:"phone_snapshot"`

	CreatedAt time.Time `json:"created_at"`
}
