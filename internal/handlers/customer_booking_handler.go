package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminasalon/booking-api/internal/auth"
	"github.com/luminasalon/booking-api/internal/httperr"
	"github.com/luminasalon/booking-api/internal/httpresp"
	"github.com/luminasalon/booking-api/internal/middleware"
	usecase "github.com/luminasalon/booking-api/internal/usecase/booking"
)

type CustomerBookingHandler struct {
	listUC   *usecase.ListUserBookings
	cancelUC *usecase.CancelBooking
}

func NewCustomerBookingHandler(
	listUC *usecase.ListUserBookings,
	cancelUC *usecase.CancelBooking,
) *CustomerBookingHandler {
	return &CustomerBookingHandler{
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// LIST OWN BOOKINGS
// ======================================================

// A userId that is not the authenticated caller's own id gets a 404,
// never another customer's bookings.
func (h *CustomerBookingHandler) ListForUser(c *gin.Context) {
	caller := c.MustGet(middleware.ContextCaller).(*auth.Caller)

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user id")
		return
	}

	if caller.User.ID != uint(userID) {
		httperr.NotFound(c, "Not found")
		return
	}

	views, err := h.listUC.Execute(c.Request.Context(), uint(userID))
	if err != nil {
		httperr.Internal(c, "Failed to fetch bookings")
		return
	}

	httpresp.OK(c, views)
}

// ======================================================
// CANCEL
// ======================================================

type CancelBookingRequest struct {
	UserID uint `json:"userId"`
}

func (h *CustomerBookingHandler) Cancel(c *gin.Context) {
	caller := c.MustGet(middleware.ContextCaller).(*auth.Caller)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		httperr.BadRequest(c, "Missing required field: userId")
		return
	}

	if caller.User.ID != req.UserID {
		httperr.NotFound(c, "Booking not found or does not belong to this user")
		return
	}

	view, err := h.cancelUC.Execute(c.Request.Context(), id, req.UserID)
	if err != nil {
		writeBusiness(c, err, "Failed to cancel booking")
		return
	}

	httpresp.Message(c, 200, "Booking cancelled successfully", "booking", view)
}
