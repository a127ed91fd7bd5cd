package get_establishment_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	establishmentID int64,
	userID int64,
	startDateStr string,
	endDateStr string,
	statusStr string,
	includeInactiveStr string,
) (*models.GetEstablishmentAppointmentsRequest, error) {
	req := &models.GetEstablishmentAppointmentsRequest{
		UserID:          userID,
		EstablishmentID: establishmentID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
