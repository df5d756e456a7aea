package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfectdrive/rental-service/internal/domain"
	bookingRepo "github.com/perfectdrive/rental-service/internal/infra/storage/booking"
	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
	"github.com/perfectdrive/rental-service/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// stubRepo хранит одну заявку и фиксирует вызовы мутаций
type stubRepo struct {
	booking *domain.Booking

	listResult []*domain.Booking
	listFilter domain.BookingsFilter
	listErr    error

	updatedStatus  *domain.BookingStatus
	rejectedReason string
	storedLink     string
	deletedID      int64

	mutationErr error
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *r.booking
	return &cp, nil
}

func (r *stubRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.listFilter = filter
	return r.listResult, r.listErr
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.updatedStatus = &status
	return nil
}

func (r *stubRepo) Reject(ctx context.Context, id int64, reason string) error {
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.rejectedReason = reason
	return nil
}

func (r *stubRepo) SetPaymentLink(ctx context.Context, id int64, link string) error {
	if r.mutationErr != nil {
		return r.mutationErr
	}
	r.storedLink = link
	return nil
}

func (r *stubRepo) Delete(ctx context.Context, id int64) error {
	if r.booking == nil || r.booking.ID != id {
		return bookingRepo.ErrBookingNotFound
	}
	r.deletedID = id
	return nil
}

// stubMailer считает отправленные письма
type stubMailer struct {
	confirmedSent int
	rejectedSent  int
	paymentSent   int
	lastBooking   *domain.Booking
	err           error
}

func (m *stubMailer) SendCustomerConfirmed(ctx context.Context, b *domain.Booking) error {
	m.confirmedSent++
	m.lastBooking = b
	return m.err
}

func (m *stubMailer) SendCustomerRejected(ctx context.Context, b *domain.Booking) error {
	m.rejectedSent++
	m.lastBooking = b
	return m.err
}

func (m *stubMailer) SendCustomerPaymentLink(ctx context.Context, b *domain.Booking) error {
	m.paymentSent++
	m.lastBooking = b
	return m.err
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:                7,
		StartDate:         time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, time.February, 13, 0, 0, 0, 0, time.UTC),
		StartTime:         "09:00",
		EndTime:           "09:00",
		MileagePlan:       domain.PlanStandard,
		TotalPrice:        180,
		KmLimit:           "450 km",
		Status:            status,
		CustomerFirstname: "Jean",
		CustomerLastname:  "Dupont",
		CustomerEmail:     "jean.dupont@example.fr",
		CustomerPhone:     "+33612345678",
		DocumentIDCard:    "id.pdf",
		DocumentLicense:   "license.pdf",
		DocumentProof:     "proof.pdf",
		DepositMethod:     "empreinte CB",
	}
}

func newTestService(status domain.BookingStatus) (*Service, *stubRepo, *stubMailer) {
	repo := &stubRepo{booking: testBooking(status)}
	mailer := &stubMailer{}
	return NewService(repo, mailer, noopLogger{}), repo, mailer
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the booking as a DTO", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		resp, err := svc.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "2026-02-10", resp.StartDate)
		assert.Equal(t, "09:00", resp.StartTime)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
	})

	t.Run("Unknown id yields ErrBookingNotFound", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		_, err := svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes the converted filter to the repository", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusPending)
		repo.listResult = []*domain.Booking{testBooking(domain.StatusPending)}

		resp, err := svc.List(ctx, &models.ListBookingsRequest{
			Status:          ptr.Ptr("pending"),
			IncludeRejected: true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)

		require.NotNil(t, repo.listFilter.Status)
		assert.Equal(t, domain.StatusPending, *repo.listFilter.Status)
		assert.True(t, repo.listFilter.IncludeRejected)
	})

	t.Run("Invalid status yields ErrInvalidInput", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		_, err := svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("shipped")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Repository failure yields ErrInternal", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusPending)
		repo.listErr = errors.New("connection reset")

		_, err := svc.List(ctx, &models.ListBookingsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("Approves pending booking and notifies the customer", func(t *testing.T) {
		svc, repo, mailer := newTestService(domain.StatusPending)

		err := svc.Approve(ctx, 7)
		require.NoError(t, err)

		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusApproved, *repo.updatedStatus)
		assert.Equal(t, 1, mailer.confirmedSent)
		assert.Equal(t, domain.StatusApproved, mailer.lastBooking.Status)
	})

	t.Run("Approves booking awaiting payment", func(t *testing.T) {
		svc, _, mailer := newTestService(domain.StatusAwaitingPayment)

		err := svc.Approve(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, mailer.confirmedSent)
	})

	t.Run("Terminal and final statuses cannot be approved", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.StatusApproved, domain.StatusRejected, domain.StatusPaid,
		} {
			t.Run(string(status), func(t *testing.T) {
				svc, _, mailer := newTestService(status)

				err := svc.Approve(ctx, 7)
				assert.ErrorIs(t, err, ErrCannotApprove)
				assert.Zero(t, mailer.confirmedSent)
			})
		}
	})

	t.Run("Mailer failure does not fail the approval", func(t *testing.T) {
		svc, repo, mailer := newTestService(domain.StatusPending)
		mailer.err = errors.New("gateway unavailable")

		err := svc.Approve(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusApproved, *repo.updatedStatus)
	})

	t.Run("Unknown id yields ErrBookingNotFound", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		err := svc.Approve(ctx, 999)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects with a reason and notifies the customer", func(t *testing.T) {
		svc, repo, mailer := newTestService(domain.StatusPending)

		err := svc.Reject(ctx, 7, &models.RejectBookingRequest{Reason: "véhicule indisponible"})
		require.NoError(t, err)

		assert.Equal(t, "véhicule indisponible", repo.rejectedReason)
		assert.Equal(t, 1, mailer.rejectedSent)
		assert.Equal(t, domain.StatusRejected, mailer.lastBooking.Status)
		require.NotNil(t, mailer.lastBooking.RejectionReason)
		assert.Equal(t, "véhicule indisponible", *mailer.lastBooking.RejectionReason)
	})

	t.Run("Empty reason yields ErrInvalidInput", func(t *testing.T) {
		svc, _, mailer := newTestService(domain.StatusPending)

		err := svc.Reject(ctx, 7, &models.RejectBookingRequest{Reason: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, mailer.rejectedSent)
	})

	t.Run("Already decided bookings cannot be rejected", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.StatusApproved, domain.StatusRejected, domain.StatusPaid,
		} {
			t.Run(string(status), func(t *testing.T) {
				svc, _, _ := newTestService(status)

				err := svc.Reject(ctx, 7, &models.RejectBookingRequest{Reason: "doublon"})
				assert.ErrorIs(t, err, ErrCannotReject)
			})
		}
	})
}

func TestSendPaymentLink(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the link, moves to awaiting payment and notifies", func(t *testing.T) {
		svc, repo, mailer := newTestService(domain.StatusPending)

		err := svc.SendPaymentLink(ctx, 7, &models.SendPaymentLinkRequest{
			PaymentLink: "https://pay.example.fr/abc123",
		})
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example.fr/abc123", repo.storedLink)
		assert.Equal(t, 1, mailer.paymentSent)
		assert.Equal(t, domain.StatusAwaitingPayment, mailer.lastBooking.Status)
		require.NotNil(t, mailer.lastBooking.PaymentLink)
		assert.Equal(t, "https://pay.example.fr/abc123", *mailer.lastBooking.PaymentLink)
	})

	t.Run("Empty link yields ErrInvalidInput", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		err := svc.SendPaymentLink(ctx, 7, &models.SendPaymentLinkRequest{PaymentLink: ""})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Only pending bookings may receive a link", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.StatusAwaitingPayment, domain.StatusApproved,
			domain.StatusRejected, domain.StatusPaid,
		} {
			t.Run(string(status), func(t *testing.T) {
				svc, _, mailer := newTestService(status)

				err := svc.SendPaymentLink(ctx, 7, &models.SendPaymentLinkRequest{
					PaymentLink: "https://pay.example.fr/abc123",
				})
				assert.ErrorIs(t, err, ErrCannotSendPaymentLink)
				assert.Zero(t, mailer.paymentSent)
			})
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes an existing booking", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusRejected)

		err := svc.Delete(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), repo.deletedID)
	})

	t.Run("Unknown id yields ErrBookingNotFound", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusRejected)

		err := svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
