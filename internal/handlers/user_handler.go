package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/httperr"
	"github.com/luminasalon/booking-api/internal/httpresp"
)

// UserHandler serves the admin user-management view: users decorated with
// how many bookings each owns.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

const userWithCountColumns = `
	u.id, u.name, u.email, u.phone_number, u.created_at,
	COUNT(b.id) AS booking_count`

func (h *UserHandler) List(c *gin.Context) {
	rows := make([]dto.UserWithBookingsDTO, 0)

	if err := h.db.
		Table("users u").
		Select(userWithCountColumns).
		Joins("LEFT JOIN bookings b ON b.user_id = u.id").
		Group("u.id").
		Order("u.created_at DESC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "Failed to fetch users")
		return
	}

	httpresp.OK(c, rows)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user id")
		return
	}

	var row dto.UserWithBookingsDTO
	if err := h.db.
		Table("users u").
		Select(userWithCountColumns).
		Joins("LEFT JOIN bookings b ON b.user_id = u.id").
		Where("u.id = ?", id).
		Group("u.id").
		Take(&row).Error; err != nil {

		httperr.NotFound(c, "User not found")
		return
	}

	httpresp.OK(c, row)
}
