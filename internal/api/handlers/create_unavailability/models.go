package create_unavailability

import (
	"time"

	createUnavailability "github.com/t1mofey/SLN-BookingService/internal/usecase/create_unavailability"
)

// CreateUnavailabilityRequest HTTP request model
type CreateUnavailabilityRequest struct {
	EstablishmentID int64     `json:"establishmentId"`
	StartAt         time.Time `json:"startAt"` // ISO 8601
	EndAt           time.Time `json:"endAt"`   // ISO 8601
	Type            string    `json:"type"`    // vacation, illness, training, event, other
	Reason          *string   `json:"reason,omitempty"`
	Recurrence      *string   `json:"recurrence,omitempty"` // daily, weekly, monthly
	Force           bool      `json:"force,omitempty"`
}

// UnavailabilityResponse HTTP response model
type UnavailabilityResponse struct {
	ID                   int64   `json:"id,omitempty"`
	EstablishmentID      int64   `json:"establishmentId"`
	StartAt              string  `json:"startAt"`
	EndAt                string  `json:"endAt"`
	Type                 string  `json:"type"`
	Reason               *string `json:"reason,omitempty"`
	Recurrence           *string `json:"recurrence,omitempty"`
	RequiresConfirmation bool    `json:"requiresConfirmation"`
	Warning              string  `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateUnavailabilityRequest) ToUseCaseRequest(userID int64) *createUnavailability.Request {
	return &createUnavailability.Request{
		UserID:          userID,
		EstablishmentID: r.EstablishmentID,
		StartAt:         r.StartAt,
		EndAt:           r.EndAt,
		Type:            r.Type,
		Reason:          r.Reason,
		Recurrence:      r.Recurrence,
		Force:           r.Force,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createUnavailability.Response) *UnavailabilityResponse {
	return &UnavailabilityResponse{
		ID:                   resp.ID,
		EstablishmentID:      resp.EstablishmentID,
		StartAt:              resp.StartAt,
		EndAt:                resp.EndAt,
		Type:                 resp.Type,
		Reason:               resp.Reason,
		Recurrence:           resp.Recurrence,
		RequiresConfirmation: resp.RequiresConfirmation,
		Warning:              resp.Warning,
	}
}
