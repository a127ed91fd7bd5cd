package delete_booking_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/service/policy"
	"github.com/t1mofey/SLN-BookingService/internal/service/policy/models"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgNotFound               = "политика бронирования не найдена"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgForbidden              = "доступ запрещен"
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

// Handle DELETE /api/v1/establishments/{establishmentId}/booking-policy
// Сбрасывает настройки бронирования заведения к дефолтным значениям
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /establishments/{id}/booking-policy - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /establishments/{id}/booking-policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.DeletePolicyRequest{
		UserID:          userID,
		EstablishmentID: establishmentID,
	}

	err = h.service.Delete(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrPolicyNotFound):
			h.logger.Warn("DELETE /establishments/{id}/booking-policy - Policy not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, policy.ErrEstablishmentNotFound):
			h.logger.Warn("DELETE /establishments/{id}/booking-policy - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("DELETE /establishments/{id}/booking-policy - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /establishments/{id}/booking-policy - Failed to reset policy: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /establishments/{id}/booking-policy - Policy reset successfully: establishment_id=%d, user_id=%d",
		establishmentID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
