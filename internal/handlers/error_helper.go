package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminasalon/booking-api/internal/httperr"
)

// writeBusiness maps use-case errors onto the response taxonomy; anything
// that is not a business error becomes a generic 500 so storage internals
// never leak.
func writeBusiness(c *gin.Context, err error, fallback string) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation),
		httperr.IsBusiness(err, httperr.CodeInvalidState):
		httperr.BadRequest(c, httperr.Message(err, fallback))

	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.Message(err, fallback))

	case httperr.IsBusiness(err, httperr.CodeConflict):
		httperr.Conflict(c, httperr.Message(err, fallback))

	default:
		httperr.Internal(c, fallback)
	}
}
