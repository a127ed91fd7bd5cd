package models

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// Request модели

// ListUnavailabilitiesRequest запрос на получение периодов недоступности заведения
type ListUnavailabilitiesRequest struct {
	UserID          int64      `json:"userId"`
	EstablishmentID int64      `json:"establishmentId"`
	StartDate       *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// DeleteUnavailabilityRequest запрос на удаление периода недоступности
type DeleteUnavailabilityRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// UnavailabilityResponse ответ с данными периода недоступности
type UnavailabilityResponse struct {
	ID              int64   `json:"id"`
	EstablishmentID int64   `json:"establishmentId"`
	StartAt         string  `json:"startAt"` // ISO 8601
	EndAt           string  `json:"endAt"`   // ISO 8601
	Type            string  `json:"type"`
	Reason          *string `json:"reason,omitempty"`
	Recurrence      *string `json:"recurrence,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnavailabilityListResponse ответ со списком периодов недоступности
type UnavailabilityListResponse struct {
	Unavailabilities []UnavailabilityResponse `json:"unavailabilities"`
}

// Методы конвертации

// FromDomainUnavailability конвертирует domain модель в DTO
func FromDomainUnavailability(u *domain.Unavailability) *UnavailabilityResponse {
	if u == nil {
		return nil
	}

	resp := &UnavailabilityResponse{
		ID:              u.ID,
		EstablishmentID: u.EstablishmentID,
		StartAt:         u.StartAt.Format(time.RFC3339),
		EndAt:           u.EndAt.Format(time.RFC3339),
		Type:            string(u.Type),
		Reason:          u.Reason,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}

	if u.Recurrence != nil {
		recurrence := string(*u.Recurrence)
		resp.Recurrence = &recurrence
	}

	return resp
}

// FromDomainUnavailabilityList конвертирует список domain моделей в DTO
func FromDomainUnavailabilityList(unavailabilities []*domain.Unavailability) *UnavailabilityListResponse {
	if unavailabilities == nil {
		return &UnavailabilityListResponse{
			Unavailabilities: []UnavailabilityResponse{},
		}
	}

	resp := &UnavailabilityListResponse{
		Unavailabilities: make([]UnavailabilityResponse, len(unavailabilities)),
	}

	for i, unavailability := range unavailabilities {
		if unavailabilityResp := FromDomainUnavailability(unavailability); unavailabilityResp != nil {
			resp.Unavailabilities[i] = *unavailabilityResp
		}
	}

	return resp
}
