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

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *usecase.CreateBooking
	updateUC *usecase.UpdateBooking
	deleteUC *usecase.DeleteBooking
	getUC    *usecase.GetBooking
	listUC   *usecase.ListBookings
}

func NewBookingHandler(
	createUC *usecase.CreateBooking,
	updateUC *usecase.UpdateBooking,
	deleteUC *usecase.DeleteBooking,
	getUC *usecase.GetBooking,
	listUC *usecase.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	UserPhone   string `json:"user_phone"`
}

type UpdateBookingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE (public booking form)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.createUC.Execute(c.Request.Context(), usecase.CreateBookingInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		UserPhone:   req.UserPhone,
	})
	if err != nil {
		writeBusiness(c, err, "Failed to create booking")
		return
	}

	httpresp.Created(c, view)
}

// ======================================================
// LIST / GET (admin view)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch bookings")
		return
	}

	httpresp.OK(c, views)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	view, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err, "Failed to fetch booking")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// UPDATE (admin full edit, no transition guard)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	caller := c.MustGet(middleware.ContextCaller).(*auth.Caller)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.updateUC.Execute(c.Request.Context(), id, caller.Admin.ID, usecase.UpdateBookingInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
	})
	if err != nil {
		writeBusiness(c, err, "Failed to update booking")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// DELETE (hard delete)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	caller := c.MustGet(middleware.ContextCaller).(*auth.Caller)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.deleteUC.Execute(c.Request.Context(), id, caller.Admin.ID)
	if err != nil {
		writeBusiness(c, err, "Failed to delete booking")
		return
	}

	httpresp.Message(c, 200, "Booking deleted successfully", "booking", b)
}
