package dto

import "time"

// BookingView is the joined display shape every read path returns: the
// booking row decorated with its owner's name/email and the display phone
// (snapshot when present, else the owner's live phone).
type BookingView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	UserID      *uint     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	UserPhone   string    `json:"user_phone"`
}
