package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message writes {"message": msg, <key>: payload}, the shape the frontend
// expects from mutation endpoints.
func Message(c *gin.Context, status int, msg, key string, payload any) {
	c.JSON(status, gin.H{
		"message": msg,
		key:       payload,
	})
}
