package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/perfectdrive/rental-service/internal/domain"
	bookingRepo "github.com/perfectdrive/rental-service/internal/infra/storage/booking"
	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
)

// Service сервис для работы с заявками на аренду (админская панель)
type Service struct {
	bookingRepo BookingRepository
	mailer      Mailer
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает заявки с гибкой фильтрацией
// Поддерживает фильтрацию по статусу и периоду; отклонённые заявки
// по умолчанию не включаются.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.IncludeRejected {
		logMsg += ", includeRejected=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Approve подтверждает заявку и уведомляет клиента
func (s *Service) Approve(ctx context.Context, id int64) error {
	s.logger.Info("Approve: approving booking id=%d", id)

	booking, err := s.getBooking(ctx, "Approve", id)
	if err != nil {
		return err
	}

	if !booking.CanBeApproved() {
		s.logger.Warn("Approve: booking id=%d cannot be approved, status=%s", id, booking.Status)
		return ErrCannotApprove
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusApproved); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Approve: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Approve: successfully approved booking id=%d", id)

	booking.Status = domain.StatusApproved
	if err := s.mailer.SendCustomerConfirmed(ctx, booking); err != nil {
		s.logger.Error("Approve: failed to send confirmation email for booking id=%d: %v", id, err)
	}

	return nil
}

// Reject отклоняет заявку с указанием причины и уведомляет клиента
// Отклонённая заявка освобождает свои даты в календаре.
func (s *Service) Reject(ctx context.Context, id int64, req *models.RejectBookingRequest) error {
	s.logger.Info("Reject: rejecting booking id=%d", id)

	if strings.TrimSpace(req.Reason) == "" {
		s.logger.Warn("Reject: empty reason for booking id=%d", id)
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "Reject", id)
	if err != nil {
		return err
	}

	if !booking.CanBeRejected() {
		s.logger.Warn("Reject: booking id=%d cannot be rejected, status=%s", id, booking.Status)
		return ErrCannotReject
	}

	if err := s.bookingRepo.Reject(ctx, id, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Reject: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected booking id=%d", id)

	booking.Status = domain.StatusRejected
	booking.RejectionReason = &req.Reason
	if err := s.mailer.SendCustomerRejected(ctx, booking); err != nil {
		s.logger.Error("Reject: failed to send rejection email for booking id=%d: %v", id, err)
	}

	return nil
}

// SendPaymentLink сохраняет ссылку на оплату, переводит заявку в ожидание
// оплаты и отправляет ссылку клиенту
func (s *Service) SendPaymentLink(ctx context.Context, id int64, req *models.SendPaymentLinkRequest) error {
	s.logger.Info("SendPaymentLink: sending payment link for booking id=%d", id)

	if strings.TrimSpace(req.PaymentLink) == "" {
		s.logger.Warn("SendPaymentLink: empty link for booking id=%d", id)
		return fmt.Errorf("%w: payment link is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "SendPaymentLink", id)
	if err != nil {
		return err
	}

	if !booking.CanReceivePaymentLink() {
		s.logger.Warn("SendPaymentLink: booking id=%d cannot receive a link, status=%s", id, booking.Status)
		return ErrCannotSendPaymentLink
	}

	if err := s.bookingRepo.SetPaymentLink(ctx, id, req.PaymentLink); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("SendPaymentLink: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: SendPaymentLink - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SendPaymentLink: successfully stored link for booking id=%d", id)

	booking.Status = domain.StatusAwaitingPayment
	booking.PaymentLink = &req.PaymentLink
	if err := s.mailer.SendCustomerPaymentLink(ctx, booking); err != nil {
		s.logger.Error("SendPaymentLink: failed to send payment email for booking id=%d: %v", id, err)
	}

	return nil
}

// Delete удаляет заявку без уведомлений
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// getBooking получает заявку и нормализует ошибку "не найдено"
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}
