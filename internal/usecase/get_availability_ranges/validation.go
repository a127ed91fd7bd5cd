package get_availability_ranges

import (
	"fmt"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EstablishmentID <= 0 {
		return fmt.Errorf("%w: establishmentID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidPeriod)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > domain.MaxRangeDays {
		return fmt.Errorf("%w: period must not exceed %d days", ErrPeriodTooLong, domain.MaxRangeDays)
	}

	return nil
}
