package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/audit"
	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/httperr"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels a booking on behalf of its owner. A booking that does
// not exist and one owned by somebody else look identical to the caller.
// Guard and write run in one transaction over a locked row, so a status
// change landing between them cannot be silently overwritten.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*dto.BookingView, error) {

	var (
		view      *dto.BookingView
		bookingPK uint
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingForUser(ctx, bookingID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(
					httperr.CodeNotFound,
					"Booking not found or does not belong to this user",
				)
			}
			return err
		}

		if err := domain.Cancel(b); err != nil {
			return err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		v, err := tx.GetView(ctx, b.ID)
		if err != nil {
			return err
		}

		view = v
		bookingPK = b.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorCustomer,
		ActorID:   &userID,
		Action:    "booking_cancelled",
		Entity:    "booking",
		EntityID:  &bookingPK,
	})

	return view, nil
}
