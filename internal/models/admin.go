package models

import "time"

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirebaseUID string `gorm:"size:128;uniqueIndex;not null" json:"firebase_uid"`
	Username    string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email       string `gorm:"size:100;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
