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
	"github.com/luminasalon/booking-api/internal/middleware"
	"github.com/luminasalon/booking-api/internal/models"
	"github.com/luminasalon/booking-api/internal/validators"
)

type CustomerProfileHandler struct {
	repo  identity.Repository
	audit *audit.Dispatcher

	// swapped out in tests to keep DNS out of the suite
	emailCheck func(string) bool
}

func NewCustomerProfileHandler(repo identity.Repository, dispatcher *audit.Dispatcher) *CustomerProfileHandler {
	return &CustomerProfileHandler{
		repo:       repo,
		audit:      dispatcher,
		emailCheck: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type CreateCustomerProfileRequest struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type UpdateCustomerProfileRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// ======================================================
// CREATE PROFILE (after external signup)
// ======================================================

func (h *CustomerProfileHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	uid := strings.TrimSpace(req.UID)
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	if uid == "" || name == "" || email == "" || phone == "" {
		httperr.BadRequest(c, "Missing required fields: uid, name, email, phone_number")
		return
	}

	if !h.emailCheck(email) {
		httperr.BadRequest(c, "Invalid email domain")
		return
	}

	existing, err := h.repo.UserByUID(ctx, uid)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Profile already exists",
			"profile": existing,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "Failed to create customer profile")
		return
	}

	// A walk-in booking may already have created a row for this email.
	// Signing up claims that row so its bookings stay attached; an email
	// already bound to another account is a conflict.
	byEmail, err := h.repo.UserByEmail(ctx, email)
	if err == nil {
		if byEmail.FirebaseUID != nil {
			httperr.Conflict(c, "Email already registered to another account")
			return
		}

		byEmail.FirebaseUID = &uid
		byEmail.Name = name
		byEmail.PhoneNumber = phone
		if err := h.repo.SaveUser(ctx, byEmail); err != nil {
			httperr.Internal(c, "Failed to create customer profile")
			return
		}

		h.audit.Dispatch(audit.Event{
			ActorKind: audit.ActorCustomer,
			ActorID:   &byEmail.ID,
			Action:    "profile_claimed",
			Entity:    "user",
			EntityID:  &byEmail.ID,
		})

		httpresp.Message(c, http.StatusCreated, "Customer profile created successfully", "profile", byEmail)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "Failed to create customer profile")
		return
	}

	user := models.User{
		FirebaseUID: &uid,
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
	}

	if err := h.repo.CreateUser(ctx, &user); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "Profile already exists")
			return
		}
		httperr.Internal(c, "Failed to create customer profile")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorCustomer,
		ActorID:   &user.ID,
		Action:    "profile_created",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	httpresp.Message(c, http.StatusCreated, "Customer profile created successfully", "profile", user)
}

// ======================================================
// GET PROFILE
// ======================================================

func (h *CustomerProfileHandler) Get(c *gin.Context) {
	uid := c.Param("uid")

	externalID := c.MustGet(middleware.ContextExternalID).(string)
	if externalID != uid {
		httperr.NotFound(c, "Customer profile not found")
		return
	}

	user, err := h.repo.UserByUID(c.Request.Context(), uid)
	if err != nil {
		httperr.NotFound(c, "Customer profile not found")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// UPDATE PROFILE (name/phone only, email immutable)
// ======================================================

func (h *CustomerProfileHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	uid := c.Param("uid")

	externalID := c.MustGet(middleware.ContextExternalID).(string)
	if externalID != uid {
		httperr.NotFound(c, "Profile not found")
		return
	}

	var req UpdateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.PhoneNumber)
	if name == "" || phone == "" {
		httperr.BadRequest(c, "Missing required fields: name, phone_number")
		return
	}

	user, err := h.repo.UserByUID(ctx, uid)
	if err != nil {
		httperr.NotFound(c, "Profile not found")
		return
	}

	user.Name = name
	user.PhoneNumber = phone

	if err := h.repo.SaveUser(ctx, user); err != nil {
		httperr.Internal(c, "Failed to update profile")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorCustomer,
		ActorID:   &user.ID,
		Action:    "profile_updated",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	httpresp.Message(c, http.StatusOK, "Profile updated successfully", "profile", user)
}
