package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luminasalon/booking-api/internal/auth"
)

const (
	ContextExternalID = "externalID"
	ContextCaller     = "caller"
)

func Authenticated(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextExternalID, claims.ExternalID)
		c.Next()
	}
}

// RequireCustomer resolves the authenticated identity to a customer
// profile. Ownership checks against path/body ids stay in the handlers.
func RequireCustomer(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.MustGet(ContextExternalID).(string)

		caller, err := resolver.Resolve(c.Request.Context(), externalID)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownIdentity) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer profile not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve caller"})
			return
		}

		if caller.Kind != auth.CallerCustomer {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer profile not found"})
			return
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

func RequireAdmin(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.MustGet(ContextExternalID).(string)

		caller, err := resolver.Resolve(c.Request.Context(), externalID)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownIdentity) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve caller"})
			return
		}

		if !caller.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}
