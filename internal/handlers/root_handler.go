package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root documents the API surface, mirroring what the frontend expects
// from GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Beauty Salon API",
		"version": "3.0.1",
		"status":  "operational",
		"endpoints": gin.H{
			"auth": gin.H{
				"POST /customer/create-profile": "Create customer profile",
				"GET /customer/profile/:uid":    "Get customer profile",
				"PUT /customer/profile/:uid":    "Update customer profile",
				"POST /admin/create-profile":    "Create admin profile",
				"GET /admin/verify/:uid":        "Verify admin status",
			},
			"bookings": gin.H{
				"GET /bookings":                        "Get all bookings (admin)",
				"GET /bookings/:id":                    "Get single booking",
				"POST /bookings":                       "Create new booking",
				"PUT /bookings/:id":                    "Update booking",
				"DELETE /bookings/:id":                 "Delete booking",
				"GET /customer/bookings/:userId":       "Get customer's bookings",
				"PATCH /customer/bookings/:id/cancel":  "Cancel booking",
			},
			"users": gin.H{
				"GET /users":     "Get all users with booking count",
				"GET /users/:id": "Get single user details",
			},
		},
	})
}
