package cancel_appointment

import "github.com/t1mofey/SLN-BookingService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	var reason string
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}
	return &models.CancelAppointmentRequest{
		UserID:             r.UserID,
		CancellationReason: reason,
	}
}
