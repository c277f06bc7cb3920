package booking

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/audit"
	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/httperr"
)

type UpdateBookingInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Status      string
}

// UpdateBooking is the staff edit: every field is overwritten and the
// status may move to any value, including out of a terminal state. That
// is the manual correction tool, not an oversight.
type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	adminID uint,
	in UpdateBookingInput,
) (*dto.BookingView, error) {

	status := strings.TrimSpace(in.Status)
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness(
			httperr.CodeValidation,
			"Invalid status: "+status,
		)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound, "Booking not found")
		}
		return nil, err
	}

	b.Title = strings.TrimSpace(in.Title)
	b.Description = strings.TrimSpace(in.Description)
	b.Date = strings.TrimSpace(in.Date)
	b.Time = strings.TrimSpace(in.Time)
	b.Status = status

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	view, err := uc.repo.GetView(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorAdmin,
		ActorID:   &adminID,
		Action:    "booking_updated",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return view, nil
}
