package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Reconciliation
// --------------------------------------------------

// ResolveOrCreateUser relies on the unique index on users.email to stay
// correct under concurrent submissions: the losing insert surfaces a
// unique violation and the caller retries its transaction, at which point
// the lookup finds the winner's row.
func (r *BookingGormRepository) ResolveOrCreateUser(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.User, bool, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, false, err
	}

	return &user, true, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBookingForUser takes a row lock: cancellation reads, guards, then
// writes, and the status it guarded on must still hold at the write.
func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Joined display views
// --------------------------------------------------

// Display phone falls back from the booking-time snapshot to the owner's
// live phone; rows created before the snapshot column carry an empty
// snapshot.
const viewColumns = `
	b.id, b.title, b.description, b.date, b.time, b.status, b.user_id, b.created_at,
	COALESCE(u.name, '') AS user_name,
	COALESCE(u.email, '') AS user_email,
	COALESCE(NULLIF(b.phone_snapshot, ''), u.phone_number, '') AS user_phone`

func (r *BookingGormRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings b").
		Select(viewColumns).
		Joins("LEFT JOIN users u ON u.id = b.user_id")
}

func (r *BookingGormRepository) GetView(
	ctx context.Context,
	id uint,
) (*dto.BookingView, error) {

	var view dto.BookingView
	if err := r.viewQuery(ctx).
		Where("b.id = ?", id).
		Take(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *BookingGormRepository) ListViews(
	ctx context.Context,
) ([]dto.BookingView, error) {

	views := make([]dto.BookingView, 0)
	if err := r.viewQuery(ctx).
		Order("b.created_at DESC").
		Find(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingGormRepository) ListViewsForUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingView, error) {

	views := make([]dto.BookingView, 0)
	if err := r.viewQuery(ctx).
		Where("b.user_id = ?", userID).
		Order("b.created_at DESC").
		Find(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
