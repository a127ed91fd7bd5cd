package get_availability_ranges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/availability"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// UseCase use case для получения почасовых диапазонов свободного времени
// Используется витринными страницами заведений: снимок доступности на
// несколько дней вперед в компактном текстовом виде
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

// Execute выполняет use case получения диапазонов доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityRanges: establishment=%d, period=%s to %s",
		req.EstablishmentID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilityRanges: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	establishment, err := uc.establishmentClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("GetAvailabilityRanges: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("GetAvailabilityRanges: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	schedule := establishment.WorkingHours.ToDomain()

	// 3. Загружаем записи и недоступности одним запросом на весь период
	periodStart := time.Date(req.StartDate.Year(), req.StartDate.Month(), req.StartDate.Day(), 0, 0, 0, 0, req.StartDate.Location())
	periodEnd := time.Date(req.EndDate.Year(), req.EndDate.Month(), req.EndDate.Day(), 0, 0, 0, 0, req.EndDate.Location()).
		AddDate(0, 0, 1)

	filter := domain.EstablishmentAppointmentsFilter{
		EstablishmentID: req.EstablishmentID,
		StartDate:       &periodStart,
		EndDate:         &periodEnd,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByEstablishmentWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailabilityRanges: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	unavailabilities, err := uc.unavailabilityRepo.ListByEstablishment(ctx, req.EstablishmentID, &periodStart, &periodEnd)
	if err != nil {
		uc.logger.Error("GetAvailabilityRanges: failed to get unavailabilities: %v", err)
		return nil, fmt.Errorf("%w: failed to get unavailabilities: %v", ErrInternal, err)
	}

	// 4. Считаем диапазоны по дням; дни без свободного времени опускаются
	days := make([]DayRanges, 0)
	for day := periodStart; day.Before(periodEnd); day = day.AddDate(0, 0, 1) {
		ranges := availability.MergeDayRanges(day, schedule.ForDate(day), appointments, unavailabilities)
		if len(ranges) == 0 {
			continue
		}

		days = append(days, DayRanges{
			Date:      day.Format(domain.DateFormat),
			Ranges:    ranges,
			Formatted: availability.FormatDayRanges(ranges),
		})
	}

	uc.logger.Info("GetAvailabilityRanges: %d days with availability for establishment=%d",
		len(days), req.EstablishmentID)

	return &Response{
		EstablishmentID: req.EstablishmentID,
		Days:            days,
	}, nil
}
