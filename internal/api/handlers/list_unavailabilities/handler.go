package list_unavailabilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgInvalidParams          = "некорректные параметры запроса"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgForbidden              = "доступ запрещен"
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

// Handle GET /api/v1/establishments/{establishmentId}/unavailabilities
// Query params: startDate, endDate (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/unavailabilities - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /establishments/{id}/unavailabilities - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")

	serviceReq, err := ToServiceRequest(establishmentID, userID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/unavailabilities - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем недоступности заведения (сервис сам проверит права мастера)
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, unavailabilities.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/unavailabilities - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, unavailabilities.ErrAccessDenied):
			h.logger.Warn("GET /establishments/{id}/unavailabilities - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /establishments/{id}/unavailabilities - Failed to get unavailabilities: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/unavailabilities - Unavailabilities retrieved successfully: establishment_id=%d, count=%d",
		establishmentID, len(result.Unavailabilities))
	handlers.RespondJSON(w, http.StatusOK, result.Unavailabilities)
}
