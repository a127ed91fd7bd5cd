package delete_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities"
	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities/models"
)

const (
	msgInvalidUnavailabilityID = "некорректный ID недоступности"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgNotFound                = "период недоступности не найден"
	msgForbidden               = "доступ запрещен"
)

type Handler struct {
	service UnavailabilityService
	logger  Logger
}

func NewHandler(service UnavailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/unavailabilities/{unavailabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unavailabilityIDStr := vars["unavailabilityId"]

	unavailabilityID, err := strconv.ParseInt(unavailabilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /unavailabilities/{id} - Invalid unavailability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnavailabilityID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /unavailabilities/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.DeleteUnavailabilityRequest{UserID: userID}

	err = h.service.Delete(r.Context(), unavailabilityID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, unavailabilities.ErrUnavailabilityNotFound):
			h.logger.Warn("DELETE /unavailabilities/{id} - Unavailability not found: unavailability_id=%d",
				unavailabilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, unavailabilities.ErrAccessDenied):
			h.logger.Warn("DELETE /unavailabilities/{id} - Access denied: unavailability_id=%d, user_id=%d",
				unavailabilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /unavailabilities/{id} - Failed to delete unavailability: unavailability_id=%d, error=%v",
				unavailabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /unavailabilities/{id} - Unavailability deleted successfully: unavailability_id=%d, user_id=%d",
		unavailabilityID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
