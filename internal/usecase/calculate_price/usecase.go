package calculate_price

import (
	"context"
	"fmt"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// UseCase use case расчета стоимости аренды
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет расчет стоимости аренды для окна [Start, End]
// Ошибка возвращается только для некорректного запроса; нарушения бизнес-правил
// попадают в Response.Err и сопровождаются нулевой ценой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CalculatePrice: start=%s, end=%s, plan=%s",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), req.Plan)

	resp := quote(req.Start, req.End, req.Plan)
	if resp.Err != nil {
		uc.logger.Info("CalculatePrice: window rejected: %v", resp.Err)
		return resp, nil
	}

	uc.logger.Info("CalculatePrice: total=%.2f, days=%d, km=%s",
		resp.TotalPrice, resp.Days, resp.KmLimit)

	return resp, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Plan.IsValid() {
		return fmt.Errorf("%w: unknown mileage plan %q", ErrInvalidInput, req.Plan)
	}
	if req.End.Before(req.Start) {
		return fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}
	return nil
}
