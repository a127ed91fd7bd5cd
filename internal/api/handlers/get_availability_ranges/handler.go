package get_availability_ranges

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	getAvailabilityRanges "github.com/t1mofey/SLN-BookingService/internal/usecase/get_availability_ranges"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgMissingPeriod          = "параметры startDate и endDate обязательны"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgInvalidPeriod          = "некорректный период"
	msgPeriodTooLong          = "период слишком длинный"
)

type Handler struct {
	useCase GetAvailabilityRangesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityRangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/availability
// Query params: startDate (required), endDate (required), обе YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	establishmentIDStr := vars["establishmentId"]
	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/availability - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /establishments/{id}/availability - Missing period: establishment_id=%d", establishmentID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(establishmentID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilityRanges.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/availability - Establishment not found: establishment_id=%d", establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, getAvailabilityRanges.ErrPeriodTooLong):
			h.logger.Warn("GET /establishments/{id}/availability - Period too long: establishment_id=%d, period=%s..%s",
				establishmentID, startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgPeriodTooLong)

		case errors.Is(err, getAvailabilityRanges.ErrInvalidPeriod),
			errors.Is(err, getAvailabilityRanges.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/availability - Invalid period: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /establishments/{id}/availability - Failed to get availability: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /establishments/{id}/availability - Availability retrieved successfully: establishment_id=%d, days_count=%d",
		establishmentID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
