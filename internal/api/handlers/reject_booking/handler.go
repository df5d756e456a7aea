package reject_booking

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
	msgMissingReason    = "le motif du refus est obligatoire"
	msgBookingNotFound  = "réservation introuvable"
	msgCannotReject     = "cette réservation ne peut plus être refusée"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/reject
// Body: {"reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/reject - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.Reject(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/reject - Missing reason: id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMissingReason)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/reject - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotReject):
			h.logger.Warn("PATCH /admin/bookings/{id}/reject - Cannot reject: id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotReject)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/reject - Failed for id=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/reject - Booking rejected: id=%d", bookingID)
	handlers.RespondNoContent(w)
}
