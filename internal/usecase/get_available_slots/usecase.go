package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/availability"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo     AppointmentRepository
	unavailabilityRepo  UnavailabilityRepository
	policyRepo          PolicyRepository
	establishmentClient EstablishmentServiceClient
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	unavailabilityRepo UnavailabilityRepository,
	policyRepo PolicyRepository,
	establishmentClient EstablishmentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:     appointmentRepo,
		unavailabilityRepo:  unavailabilityRepo,
		policyRepo:          policyRepo,
		establishmentClient: establishmentClient,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: establishment=%d, service=%d, date=%s",
		req.EstablishmentID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем заведение
	establishment, err := uc.establishmentClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.establishmentClient.GetService(ctx, req.EstablishmentID, req.ServiceID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Отключенная услуга не принимает записи
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 6. Получаем политику бронирования заведения
	policy, err := uc.policyRepo.GetByEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
			return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}
		policy = domain.DefaultBookingPolicy(req.EstablishmentID)
		uc.logger.Info("GetAvailableSlots: using default policy for establishment=%d", req.EstablishmentID)
	}

	// 7. Валидация даты с учетом горизонта бронирования
	if err := validateDate(req.Date, now, policy.AdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 8. Расписание заведения на указанный день недели
	schedule := establishment.WorkingHours.ToDomain().ForDate(req.Date)
	if !schedule.IsOpen {
		uc.logger.Info("GetAvailableSlots: establishment is closed on %s", req.Date.Format(domain.DateFormat))
		return emptyResponse(req, service.DurationMinutes), nil
	}

	// 9. Загружаем записи и недоступности, пересекающиеся с этим днем
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := domain.EstablishmentAppointmentsFilter{
		EstablishmentID: req.EstablishmentID,
		StartDate:       &dayStart,
		EndDate:         &dayEnd,
		IncludeInactive: false, // Отмененные записи время не занимают
	}

	appointments, err := uc.appointmentRepo.GetByEstablishmentWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	unavailabilities, err := uc.unavailabilityRepo.ListByEstablishment(ctx, req.EstablishmentID, &dayStart, &dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get unavailabilities: %v", err)
		return nil, fmt.Errorf("%w: failed to get unavailabilities: %v", ErrInternal, err)
	}

	// 10. Слоты раньше cutoff не предлагаются
	cutoff := now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)

	slots := availability.EnumerateSlots(
		req.Date,
		schedule,
		service.DurationMinutes,
		appointments,
		unavailabilities,
		policy.SlotStepMinutes,
		cutoff,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for establishment=%d, service=%d, date=%s",
		len(slots), req.EstablishmentID, req.ServiceID, req.Date.Format(domain.DateFormat))

	resp := &Response{
		EstablishmentID: req.EstablishmentID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           make([]Slot, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, Slot{
			StartTime: slot.StartAt.Format(domain.TimeFormat),
			EndTime:   slot.EndAt.Format(domain.TimeFormat),
		})
	}

	return resp, nil
}

func emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		EstablishmentID: req.EstablishmentID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           []Slot{},
	}
}
