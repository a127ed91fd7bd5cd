package get_available_slots

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	getAvailableSlots "github.com/t1mofey/SLN-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	EstablishmentID int64          `json:"establishmentId"`
	ServiceID       int64          `json:"serviceId"`
	Date            string         `json:"date"` // "2025-10-15"
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(establishmentID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		EstablishmentID: establishmentID,
		ServiceID:       serviceID,
		Date:            date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return &AvailableSlotsResponse{
		EstablishmentID: resp.EstablishmentID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
