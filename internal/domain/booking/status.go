package booking

import (
	"fmt"

	"github.com/luminasalon/booking-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel guards customer-initiated cancellation: Completed and
// Cancelled are terminal. Admin edits bypass this on purpose (manual
// correction tool for staff).
func CanCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness(
			httperr.CodeInvalidState,
			fmt.Sprintf("Cannot cancel booking with status: %s", current),
		)
	}
	return nil
}
