package check_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t1mofey/SLN-BookingService/internal/api/handlers"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	checkConflict "github.com/t1mofey/SLN-BookingService/internal/usecase/check_conflict"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgForbidden              = "доступ запрещен"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/establishments/{establishmentId}/conflict-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /establishments/{id}/conflict-check - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /establishments/{id}/conflict-check - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /establishments/{id}/conflict-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(establishmentID, userID))
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrEstablishmentNotFound):
			h.logger.Warn("POST /establishments/{id}/conflict-check - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, checkConflict.ErrAccessDenied):
			h.logger.Warn("POST /establishments/{id}/conflict-check - Access denied: establishment_id=%d, user_id=%d",
				establishmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /establishments/{id}/conflict-check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /establishments/{id}/conflict-check - Failed to check conflict: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /establishments/{id}/conflict-check - Conflict check completed: establishment_id=%d, has_conflict=%t",
		establishmentID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
