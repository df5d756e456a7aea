package get_availability

import (
	"errors"
	"net/http"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
	classifyAvailability "github.com/perfectdrive/rental-service/internal/usecase/classify_availability"
)

const (
	msgMissingRange  = "paramètres from et to obligatoires"
	msgInvalidRange  = "format de date invalide (attendu YYYY-MM-DD)"
	msgRangeTooLarge = "période demandée trop longue"
)

type Handler struct {
	useCase ClassifyAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ClassifyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /availability - Missing from/to params")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, classifyAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /availability - Range too large: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, classifyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to classify availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Classified %d days: from=%s, to=%s", len(result.Days), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
