package calculate_price

import (
	"errors"
	"net/http"

	"github.com/perfectdrive/rental-service/internal/api/handlers"
	calculatePrice "github.com/perfectdrive/rental-service/internal/usecase/calculate_price"
)

// Сообщения для витрины (сайт французский)
const (
	msgMissingParams        = "paramètres startDate, endDate, startTime, endTime et plan obligatoires"
	msgInvalidParams        = "format de date ou d'heure invalide (attendu YYYY-MM-DD et HH:MM)"
	msgInvalidPlan          = "formule de kilométrage inconnue"
	msgDurationTooShort     = "Durée minimum de location : 20 heures."
	msgSaturdayDeparture    = "⛔ Départ impossible le samedi. Veuillez partir le vendredi (week-end) ou un autre jour."
	msgSaturdayReturn       = "⛔ Retour impossible le samedi. Veuillez inclure le week-end (Retour Lundi)."
	msgSundayOnlyRental     = "Pas de location 24h le dimanche."
	msgWeekendMinimum       = "Minimum 48h le week-end (Vendredi - Dimanche)."
	msgNoValidDecomposition = "Impossible de calculer un tarif pour ces dates."
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote
// Query params: startDate, endDate (YYYY-MM-DD), startTime, endTime (HH:MM), plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	startDate := q.Get("startDate")
	endDate := q.Get("endDate")
	startTime := q.Get("startTime")
	endTime := q.Get("endTime")
	plan := q.Get("plan")

	if startDate == "" || endDate == "" || startTime == "" || endTime == "" || plan == "" {
		h.logger.Warn("GET /quote - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startDate, startTime, endDate, endTime, plan)
	if err != nil {
		h.logger.Warn("GET /quote - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, calculatePrice.ErrInvalidInput) {
			h.logger.Warn("GET /quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPlan)
			return
		}
		h.logger.Error("GET /quote - Failed to calculate price: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /quote - Quote calculated: total=%.2f, days=%d, rejected=%t",
		result.TotalPrice, result.Days, result.Err != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
