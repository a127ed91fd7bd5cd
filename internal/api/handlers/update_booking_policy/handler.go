package update_booking_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/service/policy"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgForbidden              = "доступ запрещен"
	msgInvalidData            = "некорректные настройки бронирования"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/establishments/{establishmentId}/booking-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /establishments/{id}/booking-policy - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /establishments/{id}/booking-policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingPolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /establishments/{id}/booking-policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := req.ToServiceRequest(establishmentID, userID)

	// Обновляем политику (сервис сам проверит права мастера)
	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrEstablishmentNotFound):
			h.logger.Warn("PUT /establishments/{id}/booking-policy - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /establishments/{id}/booking-policy - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PUT /establishments/{id}/booking-policy - Invalid data: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /establishments/{id}/booking-policy - Failed to update policy: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /establishments/{id}/booking-policy - Policy updated successfully: establishment_id=%d", establishmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
