package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/internal/service/bookings"
	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "format de date invalide (attendu YYYY-MM-DD)"
	msgInvalidFilter = "filtre invalide"
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

// Handle GET /api/v1/admin/bookings
// Query params: status, startDate, endDate, includeRejected — все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &models.ListBookingsRequest{
		IncludeRejected: q.Get("includeRejected") == "true",
	}

	if status := q.Get("status"); status != "" {
		req.Status = &status
	}

	if startDateStr := q.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := q.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
