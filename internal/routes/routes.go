package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/audit"
	"github.com/luminasalon/booking-api/internal/auth"
	"github.com/luminasalon/booking-api/internal/config"
	"github.com/luminasalon/booking-api/internal/handlers"
	infraRepo "github.com/luminasalon/booking-api/internal/infra/repository"
	"github.com/luminasalon/booking-api/internal/middleware"
	ucBooking "github.com/luminasalon/booking-api/internal/usecase/booking"
)

const (
	generalLimitMax    = 100
	authLimitMax       = 10
	rateLimitWindow    = 15 * time.Minute
	generalLimitReason = "Too many requests from this IP, please try again later."
	authLimitReason    = "Too many authentication attempts. Please try again after 15 minutes."
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(rdb, "general", generalLimitMax, rateLimitWindow, generalLimitReason))

	authLimiter := middleware.RateLimit(rdb, "auth", authLimitMax, rateLimitWindow, authLimitReason)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	identityRepo := infraRepo.NewIdentityGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	resolver := auth.NewResolver(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		getBookingUC,
		listBookingsUC,
	)

	customerBookingHandler := handlers.NewCustomerBookingHandler(
		listUserBookingsUC,
		cancelBookingUC,
	)

	customerProfileHandler := handlers.NewCustomerProfileHandler(identityRepo, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(identityRepo, auditDispatcher)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/", handlers.Root)

	r.POST("/bookings", bookingHandler.Create)

	// Profile creation runs right after external signup, before any
	// session exists; the strict limiter stands in for auth here.
	r.POST("/customer/create-profile", authLimiter, customerProfileHandler.Create)
	r.POST("/admin/create-profile", authLimiter, adminHandler.CreateProfile)
	r.GET("/admin/verify/:uid", adminHandler.Verify)

	// ======================================================
	// CUSTOMER ROUTES (token + resolved customer)
	// ======================================================
	customer := r.Group("/customer")
	customer.Use(middleware.Authenticated(verifier))
	{
		customer.GET("/profile/:uid", customerProfileHandler.Get)
		customer.PUT("/profile/:uid", customerProfileHandler.Update)

		owned := customer.Group("/bookings")
		owned.Use(middleware.RequireCustomer(resolver))
		{
			owned.GET("/:userId", customerBookingHandler.ListForUser)
			owned.PATCH("/:id/cancel", customerBookingHandler.Cancel)
		}
	}

	// ======================================================
	// ADMIN ROUTES (token + admin profile)
	// ======================================================
	adminOnly := r.Group("/")
	adminOnly.Use(middleware.Authenticated(verifier), middleware.RequireAdmin(resolver))
	{
		adminOnly.GET("/bookings", bookingHandler.List)
		adminOnly.GET("/bookings/:id", bookingHandler.Get)
		adminOnly.PUT("/bookings/:id", bookingHandler.Update)
		adminOnly.DELETE("/bookings/:id", bookingHandler.Delete)

		adminOnly.GET("/users", userHandler.List)
		adminOnly.GET("/users/:id", userHandler.Get)

		adminOnly.GET("/admin/audit-logs", auditLogsHandler.List)
	}
}
