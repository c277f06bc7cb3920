package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminasalon/booking-api/internal/auth"
	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/middleware"
	"github.com/luminasalon/booking-api/internal/models"
	usecase "github.com/luminasalon/booking-api/internal/usecase/booking"
)

// stubRepo is an in-memory domain.Repository for exercising the HTTP layer.
type stubRepo struct {
	users    []models.User
	bookings []models.Booking

	nextUserID    uint
	nextBookingID uint
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{}
}

func (r *stubRepo) seedUser(u models.User) models.User {
	r.nextUserID++
	u.ID = r.nextUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users = append(r.users, u)
	return u
}

func (r *stubRepo) seedBooking(b models.Booking) models.Booking {
	r.nextBookingID++
	b.ID = r.nextBookingID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.bookings = append(r.bookings, b)
	return b
}

func (r *stubRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	users := append([]models.User(nil), r.users...)
	bookings := append([]models.Booking(nil), r.bookings...)
	nextU, nextB := r.nextUserID, r.nextBookingID

	if err := fn(r); err != nil {
		r.users, r.bookings = users, bookings
		r.nextUserID, r.nextBookingID = nextU, nextB
		return err
	}
	return nil
}

func (r *stubRepo) ResolveOrCreateUser(ctx context.Context, name, email, phone string) (*models.User, bool, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], false, nil
		}
	}
	u := r.seedUser(models.User{Name: name, Email: email, PhoneNumber: phone})
	return &u, true, nil
}

func (r *stubRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	*b = r.seedBooking(*b)
	return nil
}

func (r *stubRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRepo) DeleteBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) GetBookingForUser(ctx context.Context, id, userID uint) (*models.Booking, error) {
	for i := range r.bookings {
		b := r.bookings[i]
		if b.ID == id && b.UserID != nil && *b.UserID == userID {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) view(b models.Booking) dto.BookingView {
	v := dto.BookingView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		UserID:      b.UserID,
		CreatedAt:   b.CreatedAt,
		UserPhone:   b.PhoneSnapshot,
	}
	if b.UserID != nil {
		for _, u := range r.users {
			if u.ID == *b.UserID {
				v.UserName = u.Name
				v.UserEmail = u.Email
				if v.UserPhone == "" {
					v.UserPhone = u.PhoneNumber
				}
			}
		}
	}
	return v
}

func (r *stubRepo) GetView(ctx context.Context, id uint) (*dto.BookingView, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			v := r.view(b)
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) ListViews(ctx context.Context) ([]dto.BookingView, error) {
	views := make([]dto.BookingView, 0, len(r.bookings))
	for _, b := range r.bookings {
		views = append(views, r.view(b))
	}
	return views, nil
}

func (r *stubRepo) ListViewsForUser(ctx context.Context, userID uint) ([]dto.BookingView, error) {
	var views []dto.BookingView
	for _, b := range r.bookings {
		if b.UserID != nil && *b.UserID == userID {
			views = append(views, r.view(b))
		}
	}
	return views, nil
}

// ======================================================
// ROUTER SETUP
// ======================================================

func asCaller(caller *auth.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextCaller, caller)
		c.Next()
	}
}

func adminCaller() *auth.Caller {
	return &auth.Caller{Kind: auth.CallerAdmin, Admin: &models.Admin{ID: 1}}
}

func customerCaller(u models.User) *auth.Caller {
	return &auth.Caller{Kind: auth.CallerCustomer, User: &u}
}

func newBookingRouter(repo domain.Repository, caller *auth.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookingHandler(
		usecase.NewCreateBooking(repo, nil),
		usecase.NewUpdateBooking(repo, nil),
		usecase.NewDeleteBooking(repo, nil),
		usecase.NewGetBooking(repo),
		usecase.NewListBookings(repo),
	)

	r.POST("/bookings", h.Create)
	admin := r.Group("/", asCaller(caller))
	admin.GET("/bookings", h.List)
	admin.GET("/bookings/:id", h.Get)
	admin.PUT("/bookings/:id", h.Update)
	admin.DELETE("/bookings/:id", h.Delete)
	return r
}

func newCustomerRouter(repo domain.Repository, caller *auth.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewCustomerBookingHandler(
		usecase.NewListUserBookings(repo),
		usecase.NewCancelBooking(repo, nil),
	)

	grp := r.Group("/customer/bookings", asCaller(caller))
	grp.GET("/:userId", h.ListForUser)
	grp.PATCH("/:id/cancel", h.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, contains string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	msg, _ := decodeBody(t, w)["error"].(string)
	if !strings.Contains(msg, contains) {
		t.Errorf("error %q does not contain %q", msg, contains)
	}
}
