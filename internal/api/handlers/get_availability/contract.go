package get_availability

import (
	"context"

	classifyAvailability "github.com/perfectdrive/rental-service/internal/usecase/classify_availability"
)

type ClassifyAvailabilityUseCase interface {
	Execute(ctx context.Context, req *classifyAvailability.Request) (*classifyAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
