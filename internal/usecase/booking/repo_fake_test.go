package booking

import (
	"context"
	"sort"

	"gorm.io/gorm"

	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository with transactional
// snapshot/rollback, so atomicity and the duplicate-email race can be
// exercised without a database.
type fakeRepo struct {
	users    []models.User
	bookings []models.Booking

	nextUserID    uint
	nextBookingID uint

	resolveCalls int

	// fault injection
	failCreateBooking error
	failGetView       error
	loseRaceOnce      bool
	pendingWinner     *models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (f *fakeRepo) seedUser(u models.User) models.User {
	if u.ID == 0 {
		f.nextUserID++
		u.ID = f.nextUserID
	} else if u.ID > f.nextUserID {
		f.nextUserID = u.ID
	}
	f.users = append(f.users, u)
	return u
}

func (f *fakeRepo) seedBooking(b models.Booking) models.Booking {
	if b.ID == 0 {
		f.nextBookingID++
		b.ID = f.nextBookingID
	} else if b.ID > f.nextBookingID {
		f.nextBookingID = b.ID
	}
	f.bookings = append(f.bookings, b)
	return b
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (f *fakeRepo) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	usersSnap := append([]models.User(nil), f.users...)
	bookingsSnap := append([]models.Booking(nil), f.bookings...)

	err := fn(f)
	if err != nil {
		f.users = usersSnap
		f.bookings = bookingsSnap

		// A concurrent transaction's commit survives this rollback.
		if f.pendingWinner != nil {
			f.users = append(f.users, *f.pendingWinner)
			f.pendingWinner = nil
		}
	}
	return err
}

// --------------------------------------------------
// Reconciliation
// --------------------------------------------------

func (f *fakeRepo) ResolveOrCreateUser(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.User, bool, error) {

	f.resolveCalls++

	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, false, nil
		}
	}

	if f.loseRaceOnce {
		f.loseRaceOnce = false
		f.nextUserID++
		f.pendingWinner = &models.User{
			ID:          f.nextUserID,
			Name:        "Race Winner",
			Email:       email,
			PhoneNumber: "000",
		}
		return nil, false, gorm.ErrDuplicatedKey
	}

	f.nextUserID++
	u := models.User{
		ID:          f.nextUserID,
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
	}
	f.users = append(f.users, u)
	return &u, true, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.failCreateBooking != nil {
		return f.failCreateBooking
	}

	f.nextBookingID++
	b.ID = f.nextBookingID
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (f *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBookingForUser(ctx context.Context, id, userID uint) (*models.Booking, error) {
	for i := range f.bookings {
		b := f.bookings[i]
		if b.ID == id && b.UserID != nil && *b.UserID == userID {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// --------------------------------------------------
// Joined display views
// --------------------------------------------------

func (f *fakeRepo) view(b models.Booking) dto.BookingView {
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
		for i := range f.users {
			if f.users[i].ID == *b.UserID {
				v.UserName = f.users[i].Name
				v.UserEmail = f.users[i].Email
				if v.UserPhone == "" {
					v.UserPhone = f.users[i].PhoneNumber
				}
				break
			}
		}
	}

	return v
}

func (f *fakeRepo) GetView(ctx context.Context, id uint) (*dto.BookingView, error) {
	if f.failGetView != nil {
		return nil, f.failGetView
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			v := f.view(f.bookings[i])
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListViews(ctx context.Context) ([]dto.BookingView, error) {
	views := make([]dto.BookingView, 0, len(f.bookings))
	for _, b := range f.bookings {
		views = append(views, f.view(b))
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

func (f *fakeRepo) ListViewsForUser(ctx context.Context, userID uint) ([]dto.BookingView, error) {
	views := make([]dto.BookingView, 0)
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			views = append(views, f.view(b))
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
