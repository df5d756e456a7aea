package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет полноту и корректность входных данных заявки
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !req.Plan.IsValid() {
		return fmt.Errorf("%w: unknown mileage plan %q", ErrInvalidInput, req.Plan)
	}

	if strings.TrimSpace(req.CustomerFirstname) == "" {
		return fmt.Errorf("%w: firstname is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerLastname) == "" {
		return fmt.Errorf("%w: lastname is required", ErrInvalidInput)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, req.CustomerEmail)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	// Заявка без полного комплекта документов не принимается
	if req.DocumentIDCard == "" || req.DocumentLicense == "" || req.DocumentProof == "" {
		return fmt.Errorf("%w: all three documents are required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DepositMethod) == "" {
		return fmt.Errorf("%w: deposit method is required", ErrInvalidInput)
	}

	return nil
}
