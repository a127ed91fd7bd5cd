package create_unavailability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/availability"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// UseCase use case для создания периода недоступности
type UseCase struct {
	appointmentRepo     AppointmentRepository
	unavailabilityRepo  UnavailabilityRepository
	establishmentClient EstablishmentServiceClient
	txManager           TransactionManager
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	unavailabilityRepo UnavailabilityRepository,
	establishmentClient EstablishmentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:     appointmentRepo,
		unavailabilityRepo:  unavailabilityRepo,
		establishmentClient: establishmentClient,
		txManager:           txManager,
		logger:              logger,
	}
}

// Execute выполняет use case создания периода недоступности
//
// Пересечение с другой недоступностью всегда блокирует создание.
// Пересечение с существующими записями дает мягкое предупреждение:
// без Force возвращается RequiresConfirmation=true и ничего не создается,
// с Force недоступность создается поверх записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateUnavailability: establishment=%d, user=%d, period=%s - %s, type=%s, force=%t",
		req.EstablishmentID, req.UserID,
		req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339), req.Type, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateUnavailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение и проверяем права мастера
	establishment, err := uc.establishmentClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("CreateUnavailability: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("CreateUnavailability: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	if !isProfessional(establishment.ProfessionalIDs, req.UserID) {
		uc.logger.Warn("CreateUnavailability: user=%d is not a professional of establishment=%d",
			req.UserID, req.EstablishmentID)
		return nil, ErrAccessDenied
	}

	unavailabilityType, _ := toDomainType(req.Type)

	var recurrence *domain.RecurrenceRule
	if req.Recurrence != nil {
		rule, _ := toDomainRecurrence(*req.Recurrence)
		recurrence = &rule
	}

	// Переменные для хранения результата
	var result *domain.Unavailability
	var warning string

	// 3. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем пересекающиеся записи с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetOverlapping(txCtx, req.EstablishmentID, req.StartAt, req.EndAt)
		if err != nil {
			uc.logger.Error("CreateUnavailability: failed to get overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		unavailabilities, err := uc.unavailabilityRepo.ListByEstablishment(txCtx, req.EstablishmentID, &req.StartAt, &req.EndAt)
		if err != nil {
			uc.logger.Error("CreateUnavailability: failed to get unavailabilities: %v", err)
			return fmt.Errorf("%w: failed to get unavailabilities: %v", ErrInternal, err)
		}

		// 3.2. Проверяем интервал на конфликты
		conflict := availability.CheckUnavailabilityConflict(req.StartAt, req.EndAt, appointments, unavailabilities, nil)
		if conflict.HasConflict {
			if conflict.Severity == availability.SeverityBlock {
				uc.logger.Warn("CreateUnavailability: conflict for establishment=%d: %s",
					req.EstablishmentID, conflict.Message)
				return fmt.Errorf("%w: %s", ErrTimeConflict, conflict.Message)
			}

			// Мягкое предупреждение: без Force ничего не создаем
			if !req.Force {
				uc.logger.Info("CreateUnavailability: confirmation required for establishment=%d: %s",
					req.EstablishmentID, conflict.Message)
				warning = conflict.Message
				return nil
			}

			uc.logger.Info("CreateUnavailability: force-creating over existing appointments for establishment=%d",
				req.EstablishmentID)
			warning = conflict.Message
		}

		// 3.3. Создаем недоступность
		unavailability := &domain.Unavailability{
			EstablishmentID: req.EstablishmentID,
			StartAt:         req.StartAt,
			EndAt:           req.EndAt,
			Type:            unavailabilityType,
			Reason:          req.Reason,
			Recurrence:      recurrence,
		}

		created, err := uc.unavailabilityRepo.Create(txCtx, unavailability)
		if err != nil {
			uc.logger.Error("CreateUnavailability: failed to create unavailability: %v", err)
			return fmt.Errorf("%w: failed to create unavailability: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Требуется подтверждение: недоступность не создана
	if result == nil {
		return &Response{
			EstablishmentID:      req.EstablishmentID,
			StartAt:              req.StartAt.Format(time.RFC3339),
			EndAt:                req.EndAt.Format(time.RFC3339),
			Type:                 req.Type,
			Reason:               req.Reason,
			Recurrence:           req.Recurrence,
			RequiresConfirmation: true,
			Warning:              warning,
		}, nil
	}

	uc.logger.Info("CreateUnavailability: successfully created unavailability id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		EstablishmentID: result.EstablishmentID,
		StartAt:         result.StartAt.Format(time.RFC3339),
		EndAt:           result.EndAt.Format(time.RFC3339),
		Type:            string(result.Type),
		Reason:          result.Reason,
		Recurrence:      req.Recurrence,
		Warning:         warning,
	}, nil
}

// isProfessional проверяет, что userID входит в список мастеров заведения
func isProfessional(professionalIDs []int64, userID int64) bool {
	for _, id := range professionalIDs {
		if id == userID {
			return true
		}
	}
	return false
}
