package models

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// Request модели

// GetPolicyRequest запрос на получение политики бронирования
type GetPolicyRequest struct {
	UserID          int64 `json:"userId"`
	EstablishmentID int64 `json:"establishmentId"`
}

// UpdatePolicyRequest запрос на создание или обновление политики бронирования
type UpdatePolicyRequest struct {
	UserID           int64 `json:"userId"`
	EstablishmentID  int64 `json:"establishmentId"`
	SlotStepMinutes  int   `json:"slotStepMinutes"`
	AdvanceDays      int   `json:"advanceDays"`
	MinNoticeMinutes int   `json:"minNoticeMinutes"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdatePolicyRequest) ToDomain() *domain.BookingPolicy {
	return &domain.BookingPolicy{
		EstablishmentID:  r.EstablishmentID,
		SlotStepMinutes:  r.SlotStepMinutes,
		AdvanceDays:      r.AdvanceDays,
		MinNoticeMinutes: r.MinNoticeMinutes,
	}
}

// DeletePolicyRequest запрос на сброс политики к дефолтным значениям
type DeletePolicyRequest struct {
	UserID          int64 `json:"userId"`
	EstablishmentID int64 `json:"establishmentId"`
}

// Response модели

// PolicyResponse ответ с настройками бронирования заведения
type PolicyResponse struct {
	EstablishmentID  int64 `json:"establishmentId"`
	SlotStepMinutes  int   `json:"slotStepMinutes"`
	AdvanceDays      int   `json:"advanceDays"`
	MinNoticeMinutes int   `json:"minNoticeMinutes"`
	IsDefault        bool  `json:"isDefault"` // true, если заведение не настраивало политику

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.BookingPolicy, isDefault bool) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		EstablishmentID:  p.EstablishmentID,
		SlotStepMinutes:  p.SlotStepMinutes,
		AdvanceDays:      p.AdvanceDays,
		MinNoticeMinutes: p.MinNoticeMinutes,
		IsDefault:        isDefault,
	}

	if !isDefault && !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
