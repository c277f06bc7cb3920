package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/audit"
	"github.com/luminasalon/booking-api/internal/domain/identity"
	"github.com/luminasalon/booking-api/internal/httperr"
	"github.com/luminasalon/booking-api/internal/httpresp"
	"github.com/luminasalon/booking-api/internal/models"
)

type AdminHandler struct {
	repo  identity.Repository
	audit *audit.Dispatcher
}

func NewAdminHandler(repo identity.Repository, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{repo: repo, audit: dispatcher}
}

type CreateAdminProfileRequest struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ======================================================
// CREATE ADMIN PROFILE
// ======================================================

func (h *AdminHandler) CreateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	uid := strings.TrimSpace(req.UID)
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if uid == "" || username == "" || email == "" {
		httperr.BadRequest(c, "Missing required fields: uid, username, email")
		return
	}

	existing, err := h.repo.AdminByUID(ctx, uid)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Admin profile already exists",
			"admin": existing,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "Failed to create admin profile")
		return
	}

	// Username conflicts are reported separately from uid conflicts.
	taken, err := h.repo.UsernameTaken(ctx, username)
	if err != nil {
		httperr.Internal(c, "Failed to create admin profile")
		return
	}
	if taken {
		httperr.Conflict(c, "Username already taken")
		return
	}

	admin := models.Admin{
		FirebaseUID: uid,
		Username:    username,
		Email:       email,
	}

	if err := h.repo.CreateAdmin(ctx, &admin); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "Admin profile already exists")
			return
		}
		httperr.Internal(c, "Failed to create admin profile")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorAdmin,
		ActorID:   &admin.ID,
		Action:    "admin_profile_created",
		Entity:    "admin",
		EntityID:  &admin.ID,
	})

	httpresp.Message(c, http.StatusCreated, "Admin profile created successfully", "admin", admin)
}

// ======================================================
// VERIFY ADMIN STATUS
// ======================================================

// A uid with no admin row is an expected outcome, reported as
// isAdmin:false rather than a bare error.
func (h *AdminHandler) Verify(c *gin.Context) {
	uid := c.Param("uid")

	admin, err := h.repo.AdminByUID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"isAdmin": false,
			"error":   "Admin profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAdmin":  true,
		"username": admin.Username,
		"admin":    admin,
	})
}
