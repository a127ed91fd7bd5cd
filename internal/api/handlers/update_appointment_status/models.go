package update_appointment_status

import "github.com/t1mofey/SLN-BookingService/internal/service/appointments/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: r.UserID,
		Status: r.Status,
	}
}
