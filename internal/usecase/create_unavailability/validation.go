package create_unavailability

import (
	"fmt"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

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

	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidInput)
	}

	if _, err := toDomainType(req.Type); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Recurrence != nil {
		if _, err := toDomainRecurrence(*req.Recurrence); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

// toDomainType конвертирует строку в domain.UnavailabilityType с валидацией
func toDomainType(value string) (domain.UnavailabilityType, error) {
	t := domain.UnavailabilityType(value)
	for _, valid := range domain.ValidUnavailabilityTypes {
		if t == valid {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown unavailability type %q", value)
}

// toDomainRecurrence конвертирует строку в domain.RecurrenceRule с валидацией
func toDomainRecurrence(value string) (domain.RecurrenceRule, error) {
	r := domain.RecurrenceRule(value)
	for _, valid := range domain.ValidRecurrenceRules {
		if r == valid {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown recurrence rule %q", value)
}
