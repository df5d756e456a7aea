package send_payment_link

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
	"github.com/perfectdrive/rental-service/internal/service/bookings"
	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "identifiant de réservation invalide"
	msgInvalidBody      = "corps de requête invalide"
	msgMissingLink      = "le lien de paiement est obligatoire"
	msgBookingNotFound  = "réservation introuvable"
	msgCannotSendLink   = "le lien de paiement ne peut pas être envoyé pour cette réservation"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/payment-link
// Body: {"paymentLink": "https://..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/payment-link - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.SendPaymentLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/payment-link - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.SendPaymentLink(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/payment-link - Missing link: id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMissingLink)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/payment-link - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotSendPaymentLink):
			h.logger.Warn("PATCH /admin/bookings/{id}/payment-link - Cannot send link: id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotSendLink)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/payment-link - Failed for id=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/payment-link - Link sent: id=%d", bookingID)
	handlers.RespondNoContent(w)
}
