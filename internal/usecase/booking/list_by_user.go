package booking

import (
	"context"

	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingView, error) {
	return uc.repo.ListViewsForUser(ctx, userID)
}
