package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/audit"
	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/timezone"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

// ======================================================
// INPUT
// ======================================================

type RegisterPaymentInput struct {
	AppointmentID uuid.UUID
	PaymentMethod string
	Price         float64
	Discount      float64
}

// ======================================================
// USE CASE
// ======================================================

// RegisterPayment is the cash-register flow: at most one transaction per
// appointment. The existence pre-check gives the friendly error; the unique
// index on transactions.appointment_id closes the check-then-act race, and a
// violation from a lost race maps to the same error with the appointment
// status untouched.
type RegisterPayment struct {
	repo  domain.Repository
	cache *viewcache.DayViews
	audit *audit.Dispatcher
	feed  *realtime.Feed
}

func NewRegisterPayment(
	repo domain.Repository,
	cache *viewcache.DayViews,
	auditDispatcher *audit.Dispatcher,
	feed *realtime.Feed,
) *RegisterPayment {
	return &RegisterPayment{
		repo:  repo,
		cache: cache,
		audit: auditDispatcher,
		feed:  feed,
	}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in RegisterPaymentInput,
) (*models.Transaction, error) {

	if in.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	paid, err := uc.repo.HasTransaction(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, httperr.ErrBusiness("already_paid")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), domain.StatusPaid); err != nil {
		return nil, err
	}

	tr := &models.Transaction{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		ServiceID:     ap.ServiceID,
		PaymentMethod: in.PaymentMethod,
		Price:         in.Price,
		Discount:      in.Discount,
		CompletedAt:   timezone.Now(),
	}

	if err := uc.repo.SavePayment(ctx, tr, string(domain.StatusPaid)); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_paid")
		}
		return nil, err
	}

	uc.cache.Invalidate(ap.BarberID, ap.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   "payment_registered",
		Entity:   "transaction",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"method":   in.PaymentMethod,
			"price":    in.Price,
			"discount": in.Discount,
		},
	})

	uc.feed.Publish(ctx, realtime.Event{
		Table:    realtime.TableTransactions,
		BarberID: ap.BarberID.String(),
		Date:     ap.AppointmentDate,
	})
	uc.feed.Publish(ctx, realtime.Event{
		Table:    realtime.TableAppointments,
		BarberID: ap.BarberID.String(),
		Date:     ap.AppointmentDate,
	})

	return tr, nil
}
