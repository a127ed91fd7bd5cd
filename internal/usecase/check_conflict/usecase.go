package check_conflict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/availability"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// UseCase use case для проверки интервала на конфликты без записи в БД
// Используется интерфейсом мастера при редактировании записей и
// недоступностей: проверить "а что будет" до сохранения
type UseCase struct {
	appointmentRepo     AppointmentRepository
	unavailabilityRepo  UnavailabilityRepository
	establishmentClient EstablishmentServiceClient
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	unavailabilityRepo UnavailabilityRepository,
	establishmentClient EstablishmentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:     appointmentRepo,
		unavailabilityRepo:  unavailabilityRepo,
		establishmentClient: establishmentClient,
		logger:              logger,
	}
}

// Execute выполняет use case проверки интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: establishment=%d, user=%d, target=%s, interval=%s - %s",
		req.EstablishmentID, req.UserID, req.Target,
		req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение и проверяем права мастера
	establishment, err := uc.establishmentClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("CheckConflict: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("CheckConflict: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	if !isProfessional(establishment.ProfessionalIDs, req.UserID) {
		uc.logger.Warn("CheckConflict: user=%d is not a professional of establishment=%d",
			req.UserID, req.EstablishmentID)
		return nil, ErrAccessDenied
	}

	// 3. Загружаем пересекающиеся записи и недоступности
	appointments, err := uc.appointmentRepo.GetOverlapping(ctx, req.EstablishmentID, req.StartAt, req.EndAt)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	unavailabilities, err := uc.unavailabilityRepo.ListByEstablishment(ctx, req.EstablishmentID, &req.StartAt, &req.EndAt)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get unavailabilities: %v", err)
		return nil, fmt.Errorf("%w: failed to get unavailabilities: %v", ErrInternal, err)
	}

	// 4. Прогоняем проверку нужного вида
	var conflict availability.Conflict
	switch req.Target {
	case TargetAppointment:
		conflict = availability.CheckAppointmentConflict(
			req.StartAt, req.EndAt, appointments, unavailabilities, req.ExcludeAppointmentID)
	case TargetUnavailability:
		conflict = availability.CheckUnavailabilityConflict(
			req.StartAt, req.EndAt, appointments, unavailabilities, req.ExcludeUnavailabilityID)
	}

	if conflict.HasConflict {
		uc.logger.Info("CheckConflict: conflict found for establishment=%d: kind=%s, severity=%s",
			req.EstablishmentID, conflict.Kind, conflict.Severity)
	} else {
		uc.logger.Info("CheckConflict: no conflict for establishment=%d", req.EstablishmentID)
	}

	return &Response{
		HasConflict: conflict.HasConflict,
		Kind:        string(conflict.Kind),
		Severity:    string(conflict.Severity),
		Message:     conflict.Message,
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
