package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/audit"
	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/httperr"
	"github.com/luminasalon/booking-api/internal/models"
)

// DeleteBooking removes the row permanently, regardless of status. There
// is no soft delete.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	adminID uint,
) (*models.Booking, error) {

	b, err := uc.repo.DeleteBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound, "Booking not found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorAdmin,
		ActorID:   &adminID,
		Action:    "booking_deleted",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
