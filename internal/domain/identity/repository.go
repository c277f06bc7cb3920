package identity

import (
	"context"

	"github.com/luminasalon/booking-api/internal/models"
)

// Repository is the profile store behind customer signup and admin
// onboarding. Lookups surface the storage not-found error for absent rows.
type Repository interface {
	// -------- Customers --------
	UserByUID(
		ctx context.Context,
		uid string,
	) (*models.User, error)

	UserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	SaveUser(
		ctx context.Context,
		u *models.User,
	) error

	// -------- Admins --------
	AdminByUID(
		ctx context.Context,
		uid string,
	) (*models.Admin, error)

	UsernameTaken(
		ctx context.Context,
		username string,
	) (bool, error)

	CreateAdmin(
		ctx context.Context,
		a *models.Admin,
	) error
}
