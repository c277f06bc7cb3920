package booking

import (
	"context"

	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction; any error rolls the whole thing back. Booking
	// creation depends on this so a reconciled user and its booking
	// commit or vanish together.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Reconciliation --------
	// ResolveOrCreateUser maps a normalized email to its user row,
	// creating one from the submission when none exists. The bool
	// reports created-vs-existing.
	ResolveOrCreateUser(
		ctx context.Context,
		name string,
		email string,
		phone string,
	) (*models.User, bool, error)

	// -------- Booking (write) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Booking, error)

	// -------- Joined display views --------
	GetView(
		ctx context.Context,
		id uint,
	) (*dto.BookingView, error)

	ListViews(
		ctx context.Context,
	) ([]dto.BookingView, error)

	ListViewsForUser(
		ctx context.Context,
		userID uint,
	) ([]dto.BookingView, error)
}
