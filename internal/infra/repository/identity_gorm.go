package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/domain/identity"
	"github.com/luminasalon/booking-api/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (r *IdentityGormRepository) UserByUID(
	ctx context.Context,
	uid string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("firebase_uid = ?", uid).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *IdentityGormRepository) UserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityGormRepository) SaveUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// --------------------------------------------------
// Admins
// --------------------------------------------------

func (r *IdentityGormRepository) AdminByUID(
	ctx context.Context,
	uid string,
) (*models.Admin, error) {

	var a models.Admin
	if err := r.db.WithContext(ctx).
		Where("firebase_uid = ?", uid).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *IdentityGormRepository) UsernameTaken(
	ctx context.Context,
	username string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *IdentityGormRepository) CreateAdmin(
	ctx context.Context,
	a *models.Admin,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Compile-time check
var _ identity.Repository = (*IdentityGormRepository)(nil)
