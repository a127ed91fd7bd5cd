package list_unavailabilities

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(establishmentID, userID int64, startDateStr, endDateStr string) (*models.ListUnavailabilitiesRequest, error) {
	req := &models.ListUnavailabilitiesRequest{
		UserID:          userID,
		EstablishmentID: establishmentID,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		// Конец периода включает весь указанный день
		endOfDay := endDate.AddDate(0, 0, 1)
		req.EndDate = &endOfDay
	}

	return req, nil
}
