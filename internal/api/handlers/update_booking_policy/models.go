package update_booking_policy

import "github.com/t1mofey/SLN-BookingService/internal/service/policy/models"

// UpdateBookingPolicyRequest HTTP request model
type UpdateBookingPolicyRequest struct {
	SlotStepMinutes  int `json:"slotStepMinutes"`
	AdvanceDays      int `json:"advanceDays"`
	MinNoticeMinutes int `json:"minNoticeMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingPolicyRequest) ToServiceRequest(establishmentID, userID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:           userID,
		EstablishmentID:  establishmentID,
		SlotStepMinutes:  r.SlotStepMinutes,
		AdvanceDays:      r.AdvanceDays,
		MinNoticeMinutes: r.MinNoticeMinutes,
	}
}
