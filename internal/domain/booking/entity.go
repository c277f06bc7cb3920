package booking

import "github.com/luminasalon/booking-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}
