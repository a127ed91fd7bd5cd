package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/availability"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	clientClient "github.com/t1mofey/SLN-BookingService/internal/integrations/clientservice"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo     AppointmentRepository
	unavailabilityRepo  UnavailabilityRepository
	policyRepo          PolicyRepository
	establishmentClient EstablishmentServiceClient
	clientClient        ClientServiceClient
	txManager           TransactionManager
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	unavailabilityRepo UnavailabilityRepository,
	policyRepo PolicyRepository,
	establishmentClient EstablishmentServiceClient,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:     appointmentRepo,
		unavailabilityRepo:  unavailabilityRepo,
		policyRepo:          policyRepo,
		establishmentClient: establishmentClient,
		clientClient:        clientClient,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции
// с блокировкой пересекающихся записей, чтобы два клиента не смогли
// одновременно занять один интервал
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, establishment=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.EstablishmentID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем заведение
	establishment, err := uc.establishmentClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("CreateAppointment: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.establishmentClient.GetService(ctx, req.EstablishmentID, req.ServiceID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Отключенная услуга не принимает записи
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 6. Получаем профиль клиента для денормализации имени
	// При недоступности ClientService запись создается без имени
	var clientName *string
	profile, err := uc.clientClient.GetClientWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = ptr.Ptr(profile.FullName())
	case errors.Is(err, clientClient.ErrClientNotFound):
		uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
		return nil, ErrClientNotFound
	case errors.Is(err, clientClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: creating appointment without client name for client=%d", req.ClientID)
	default:
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 7. Вычисляем интервал записи
	startAt, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем политику бронирования
		policy, err := uc.policyRepo.GetByEstablishment(txCtx, req.EstablishmentID)
		if err != nil {
			if !errors.Is(err, policyRepo.ErrPolicyNotFound) {
				uc.logger.Error("CreateAppointment: failed to get policy: %v", err)
				return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
			}
			policy = domain.DefaultBookingPolicy(req.EstablishmentID)
			uc.logger.Info("CreateAppointment: using default policy for establishment=%d", req.EstablishmentID)
		}

		// 8.2. Валидация даты с учетом горизонта бронирования
		if err := validateDate(req.Date, now, policy.AdvanceDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 8.3. Заведение должно работать в этот день
		schedule := establishment.WorkingHours.ToDomain().ForDate(req.Date)
		if !schedule.IsOpen {
			uc.logger.Warn("CreateAppointment: establishment is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrEstablishmentClosed
		}

		// 8.4. Проверка минимального времени до начала
		if err := validateStartTime(req.Date, req.StartTime, now, policy.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
			return err
		}

		// 8.5. Получаем пересекающиеся записи с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetOverlapping(txCtx, req.EstablishmentID, startAt, endAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		unavailabilities, err := uc.unavailabilityRepo.ListByEstablishment(txCtx, req.EstablishmentID, &startAt, &endAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get unavailabilities: %v", err)
			return fmt.Errorf("%w: failed to get unavailabilities: %v", ErrInternal, err)
		}

		// 8.6. Проверяем интервал на конфликты
		conflict := availability.CheckAppointmentConflict(startAt, endAt, appointments, unavailabilities, nil)
		if conflict.HasConflict {
			uc.logger.Warn("CreateAppointment: conflict for establishment=%d, interval=%s - %s: %s",
				req.EstablishmentID, startAt.Format(time.RFC3339), endAt.Format(time.RFC3339), conflict.Message)
			return fmt.Errorf("%w: %s", ErrTimeConflict, conflict.Message)
		}

		// 8.7. Создаем запись с денормализацией данных услуги и клиента
		appointment := &domain.Appointment{
			ClientID:        req.ClientID,
			EstablishmentID: req.EstablishmentID,
			ServiceID:       req.ServiceID,
			StartAt:         startAt,
			EndAt:           endAt,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    getServicePrice(service),
			ClientName:      clientName,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		EstablishmentID: result.EstablishmentID,
		ServiceID:       result.ServiceID,
		Date:            result.StartAt.Format(domain.DateFormat),
		StartTime:       result.StartAt.Format(domain.TimeFormat),
		EndTime:         result.EndAt.Format(domain.TimeFormat),
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *establishmentClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
