package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
	createBooking "github.com/perfectdrive/rental-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody        = "corps de requête invalide"
	msgInvalidFields      = "données de réservation incomplètes ou invalides"
	msgInvalidWindow      = "ces dates ne respectent pas nos conditions de location"
	msgWindowNotAvailable = "ces dates ne sont plus disponibles"
	msgStartDateInPast    = "la date de départ est déjà passée"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createBooking.ErrStartDateInPast):
			h.logger.Warn("POST /bookings - Start date in past: start=%s", req.StartDate)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		case errors.Is(err, createBooking.ErrInvalidRentalWindow):
			h.logger.Warn("POST /bookings - Rental window rejected: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createBooking.ErrWindowNotAvailable):
			h.logger.Warn("POST /bookings - Window not available: start=%s, end=%s", req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgWindowNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, start=%s, end=%s, total=%.2f",
		result.ID, req.StartDate, req.EndDate, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
