package check_conflict

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.EstablishmentID <= 0 {
		return fmt.Errorf("%w: establishmentID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	if req.Target != TargetAppointment && req.Target != TargetUnavailability {
		return fmt.Errorf("%w: target must be %q or %q", ErrInvalidInput, TargetAppointment, TargetUnavailability)
	}

	return nil
}
