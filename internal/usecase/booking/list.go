package booking

import (
	"context"

	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
) ([]dto.BookingView, error) {
	return uc.repo.ListViews(ctx)
}
