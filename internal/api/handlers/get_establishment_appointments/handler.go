package get_establishment_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/service/appointments"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgInvalidParams          = "некорректные параметры запроса"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgForbidden              = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/appointments
// Query params: startDate, endDate, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/appointments - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /establishments/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	statusStr := r.URL.Query().Get("status")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	serviceReq, err := ToServiceRequest(establishmentID, userID, startDateStr, endDateStr, statusStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем записи заведения (сервис сам проверит права мастера)
	result, err := h.service.GetEstablishmentAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/appointments - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /establishments/{id}/appointments - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/appointments - Invalid filter: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /establishments/{id}/appointments - Failed to get appointments: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/appointments - Appointments retrieved successfully: establishment_id=%d, count=%d",
		establishmentID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
