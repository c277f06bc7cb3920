package booking

import (
	"context"
	"strings"
	"time"

	"github.com/luminasalon/booking-api/internal/audit"
	domain "github.com/luminasalon/booking-api/internal/domain/booking"
	"github.com/luminasalon/booking-api/internal/dto"
	"github.com/luminasalon/booking-api/internal/httperr"
	"github.com/luminasalon/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Title       string
	Description string
	Date        string
	Time        string

	UserName  string
	UserEmail string
	UserPhone string
}

func (in *CreateBookingInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.UserName = strings.TrimSpace(in.UserName)
	in.UserEmail = strings.ToLower(strings.TrimSpace(in.UserEmail))
	in.UserPhone = strings.TrimSpace(in.UserPhone)
}

func (in *CreateBookingInput) validate() error {
	var missing []string

	for _, f := range []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"date", in.Date},
		{"time", in.Time},
		{"user_name", in.UserName},
		{"user_email", in.UserEmail},
		{"user_phone", in.UserPhone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return httperr.ErrBusiness(
			httperr.CodeValidation,
			"Missing required fields: "+strings.Join(missing, ", "),
		)
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness(httperr.CodeValidation, "Invalid date format, expected YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return httperr.ErrBusiness(httperr.CodeValidation, "Invalid time format, expected HH:MM")
	}

	return nil
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the reconciliation flow: resolve or create the owning
// user by email and persist the booking with a point-in-time phone
// snapshot, all inside one transaction.
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*dto.BookingView, error) {

	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var (
		view        *dto.BookingView
		ownerID     uint
		ownerIsNew  bool
	)

	run := func() error {
		return uc.repo.Transaction(ctx, func(tx domain.Repository) error {

			// Existing users keep their stored phone: the submitted
			// number lives only in the booking snapshot.
			user, created, err := tx.ResolveOrCreateUser(
				ctx,
				in.UserName,
				in.UserEmail,
				in.UserPhone,
			)
			if err != nil {
				return err
			}

			b := &models.Booking{
				Title:         in.Title,
				Description:   in.Description,
				Date:          in.Date,
				Time:          in.Time,
				Status:        string(domain.InitialStatus()),
				UserID:        &user.ID,
				PhoneSnapshot: in.UserPhone,
			}

			if err := tx.CreateBooking(ctx, b); err != nil {
				return err
			}

			v, err := tx.GetView(ctx, b.ID)
			if err != nil {
				return err
			}

			view = v
			ownerID = user.ID
			ownerIsNew = created
			return nil
		})
	}

	err := run()
	if err != nil && httperr.IsUniqueViolation(err) {
		// Lost a first-submission race for this email. The retry's
		// lookup finds the row the winning transaction committed.
		err = run()
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: audit.ActorPublic,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &view.ID,
		Metadata: map[string]any{
			"user_id":      ownerID,
			"user_created": ownerIsNew,
		},
	})

	return view, nil
}
