package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/models"
)

var ErrUnknownIdentity = errors.New("no profile for this identity")

type CallerKind string

const (
	CallerAdmin    CallerKind = "admin"
	CallerCustomer CallerKind = "customer"
)

// Caller is the resolved identity behind a verified token: either a staff
// admin or a customer. Every handler consumes this one shape instead of
// re-deriving "is this an admin" on its own.
type Caller struct {
	Kind  CallerKind
	Admin *models.Admin
	User  *models.User
}

func (c *Caller) IsAdmin() bool {
	return c.Kind == CallerAdmin
}

type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve maps an external auth id to its local profile, admins first.
// A verified identity with no profile row is ErrUnknownIdentity: a normal
// branch for callers, not a fault.
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*Caller, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Where("firebase_uid = ?", externalID).
		First(&admin).Error

	if err == nil {
		return &Caller{Kind: CallerAdmin, Admin: &admin}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	err = r.db.WithContext(ctx).
		Where("firebase_uid = ?", externalID).
		First(&user).Error

	if err == nil {
		return &Caller{Kind: CallerCustomer, User: &user}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrUnknownIdentity
}
