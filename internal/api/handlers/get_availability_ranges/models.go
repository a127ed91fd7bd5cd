package get_availability_ranges

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	getAvailabilityRanges "github.com/t1mofey/SLN-BookingService/internal/usecase/get_availability_ranges"
)

// DayRangesResponse HTTP модель свободного времени на один день
type DayRangesResponse struct {
	Date      string   `json:"date"`      // "2025-10-15"
	Ranges    []string `json:"ranges"`    // ["9h - 12h", "14h - 18h"]
	Formatted string   `json:"formatted"` // "9h - 12h / 14h - 18h"
}

// AvailabilityRangesResponse HTTP response model
type AvailabilityRangesResponse struct {
	EstablishmentID int64               `json:"establishmentId"`
	Days            []DayRangesResponse `json:"days"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(establishmentID int64, startDateStr, endDateStr string) (*getAvailabilityRanges.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailabilityRanges.Request{
		EstablishmentID: establishmentID,
		StartDate:       startDate,
		EndDate:         endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilityRanges.Response) *AvailabilityRangesResponse {
	days := make([]DayRangesResponse, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayRangesResponse{
			Date:      day.Date,
			Ranges:    day.Ranges,
			Formatted: day.Formatted,
		}
	}

	return &AvailabilityRangesResponse{
		EstablishmentID: resp.EstablishmentID,
		Days:            days,
	}
}
