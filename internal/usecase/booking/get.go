package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/httperr"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*dto.BookingView, error) {

	view, err := uc.repo.GetView(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound, "Booking not found")
		}
		return nil, err
	}

	return view, nil
}
