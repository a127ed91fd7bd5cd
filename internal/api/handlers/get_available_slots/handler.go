package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/t1mofey/SLN-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidServiceID       = "некорректный ID услуги"
	msgMissingServiceID       = "ID услуги обязателен"
	msgMissingDate            = "дата обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgServiceNotFound        = "услуга не найдена"
	msgServiceInactive        = "услуга недоступна для записи"
	msgInvalidRequestDate     = "некорректная дата записи"
	msgDateTooFar             = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем establishmentId из URL
	establishmentIDStr := vars["establishmentId"]
	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/available-slots - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /establishments/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /establishments/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(establishmentID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/available-slots - Establishment not found: establishment_id=%d", establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /establishments/{id}/available-slots - Service not found: establishment_id=%d, service_id=%d",
				establishmentID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceInactive):
			h.logger.Warn("GET /establishments/{id}/available-slots - Service inactive: establishment_id=%d, service_id=%d",
				establishmentID, serviceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /establishments/{id}/available-slots - Invalid date: establishment_id=%d, date=%s",
				establishmentID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidRequestDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /establishments/{id}/available-slots - Date too far in future: establishment_id=%d, date=%s",
				establishmentID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /establishments/{id}/available-slots - Failed to get slots: establishment_id=%d, service_id=%d, error=%v",
				establishmentID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /establishments/{id}/available-slots - Slots retrieved successfully: establishment_id=%d, service_id=%d, slots_count=%d",
		establishmentID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
