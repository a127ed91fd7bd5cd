package create_appointment

import (
	"errors"
	"net/http"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	createAppointment "github.com/t1mofey/SLN-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgEstablishmentNotFound = "заведение не найдено"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceInactive       = "услуга недоступна для записи"
	msgClientNotFound        = "клиент не найден"
	msgEstablishmentClosed   = "заведение закрыто в выбранную дату"
	msgInvalidDate           = "некорректная дата записи"
	msgDateTooFar            = "дата записи слишком далеко в будущем"
	msgTooLateToBook         = "слишком поздно для записи на этот слот"
	msgTimeConflict          = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: client_id=%d, establishment_id=%d", req.ClientID, req.EstablishmentID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrEstablishmentNotFound):
			h.logger.Warn("POST /appointments - Establishment not found: establishment_id=%d", req.EstablishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: establishment_id=%d, service_id=%d", req.EstablishmentID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: establishment_id=%d, service_id=%d", req.EstablishmentID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrEstablishmentClosed):
			h.logger.Warn("POST /appointments - Establishment closed: establishment_id=%d, date=%s", req.EstablishmentID, req.Date)
			handlers.RespondBadRequest(w, msgEstablishmentClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid appointment date: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: client_id=%d, establishment_id=%d", req.ClientID, req.EstablishmentID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, establishment_id=%d, error=%v",
				req.ClientID, req.EstablishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, establishment_id=%d",
		result.ID, req.ClientID, req.EstablishmentID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
