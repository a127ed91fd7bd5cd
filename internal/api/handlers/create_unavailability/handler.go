package create_unavailability

import (
	"errors"
	"net/http"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	createUnavailability "github.com/t1mofey/SLN-BookingService/internal/usecase/create_unavailability"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgEstablishmentNotFound = "заведение не найдено"
	msgForbidden             = "доступ запрещен"
	msgTimeConflict          = "период пересекается с другой недоступностью"
)

type Handler struct {
	useCase CreateUnavailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CreateUnavailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/unavailabilities
// При пересечении с активными записями без флага force вернет 200 с
// requiresConfirmation=true, ничего не создавая
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /unavailabilities - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateUnavailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /unavailabilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createUnavailability.ErrTimeConflict):
			h.logger.Warn("POST /unavailabilities - Time conflict: establishment_id=%d, user_id=%d",
				req.EstablishmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createUnavailability.ErrEstablishmentNotFound):
			h.logger.Warn("POST /unavailabilities - Establishment not found: establishment_id=%d", req.EstablishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, createUnavailability.ErrAccessDenied):
			h.logger.Warn("POST /unavailabilities - Access denied: establishment_id=%d, user_id=%d",
				req.EstablishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createUnavailability.ErrInvalidInput):
			h.logger.Warn("POST /unavailabilities - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /unavailabilities - Failed to create unavailability: establishment_id=%d, error=%v",
				req.EstablishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.RequiresConfirmation {
		h.logger.Info("POST /unavailabilities - Confirmation required: establishment_id=%d, user_id=%d",
			req.EstablishmentID, userID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /unavailabilities - Unavailability created successfully: unavailability_id=%d, establishment_id=%d",
		result.ID, req.EstablishmentID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
