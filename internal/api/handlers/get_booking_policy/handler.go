package get_booking_policy

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

// Handle GET /api/v1/establishments/{establishmentId}/booking-policy
// Если заведение не настраивало политику, возвращаются дефолтные значения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/booking-policy - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /establishments/{id}/booking-policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.GetPolicyRequest{
		UserID:          userID,
		EstablishmentID: establishmentID,
	}

	// Получаем политику (сервис сам проверит права мастера)
	result, err := h.service.Get(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/booking-policy - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("GET /establishments/{id}/booking-policy - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /establishments/{id}/booking-policy - Failed to get policy: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/booking-policy - Policy retrieved successfully: establishment_id=%d, is_default=%t",
		establishmentID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
