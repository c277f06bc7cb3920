package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Set when the customer signed up through the external auth provider.
	// Users created implicitly by a walk-in booking have no uid.
	FirebaseUID *string `gorm:"size:128;uniqueIndex" json:"firebase_uid"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"size:50" json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
}
