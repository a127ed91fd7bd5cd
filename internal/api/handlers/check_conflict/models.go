package check_conflict

import (
	"time"

	checkConflict "github.com/t1mofey/SLN-BookingService/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	StartAt time.Time `json:"startAt"` // ISO 8601
	EndAt   time.Time `json:"endAt"`   // ISO 8601
	Target  string    `json:"target"`  // appointment или unavailability

	ExcludeAppointmentID    *int64 `json:"excludeAppointmentId,omitempty"`
	ExcludeUnavailabilityID *int64 `json:"excludeUnavailabilityId,omitempty"`
}

// ConflictResponse HTTP response model
type ConflictResponse struct {
	HasConflict bool   `json:"hasConflict"`
	Kind        string `json:"kind,omitempty"`
	Severity    string `json:"severity,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest(establishmentID, userID int64) *checkConflict.Request {
	return &checkConflict.Request{
		UserID:                  userID,
		EstablishmentID:         establishmentID,
		StartAt:                 r.StartAt,
		EndAt:                   r.EndAt,
		Target:                  r.Target,
		ExcludeAppointmentID:    r.ExcludeAppointmentID,
		ExcludeUnavailabilityID: r.ExcludeUnavailabilityID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *ConflictResponse {
	return &ConflictResponse{
		HasConflict: resp.HasConflict,
		Kind:        resp.Kind,
		Severity:    resp.Severity,
		Message:     resp.Message,
	}
}
