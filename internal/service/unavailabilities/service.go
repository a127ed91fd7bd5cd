package unavailabilities

import (
	"context"
	"errors"
	"fmt"

	unavailabilityRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/unavailability"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities/models"
)

// Service сервис для работы с периодами недоступности
type Service struct {
	unavailabilityRepo  UnavailabilityRepository
	establishmentClient EstablishmentServiceClient
	logger              Logger
}

// NewService создает новый экземпляр сервиса недоступностей
func NewService(
	unavailabilityRepo UnavailabilityRepository,
	establishmentClient EstablishmentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		unavailabilityRepo:  unavailabilityRepo,
		establishmentClient: establishmentClient,
		logger:              logger,
	}
}

// List получает периоды недоступности заведения
// Доступно только мастерам заведения
func (s *Service) List(ctx context.Context, req *models.ListUnavailabilitiesRequest) (*models.UnavailabilityListResponse, error) {
	s.logger.Info("List: fetching unavailabilities for establishment=%d, user=%d", req.EstablishmentID, req.UserID)

	// Проверяем права доступа мастера
	if err := s.checkProfessionalAccess(ctx, req.EstablishmentID, req.UserID); err != nil {
		return nil, err
	}

	unavailabilities, err := s.unavailabilityRepo.ListByEstablishment(ctx, req.EstablishmentID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("List: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d unavailabilities for establishment=%d", len(unavailabilities), req.EstablishmentID)
	return models.FromDomainUnavailabilityList(unavailabilities), nil
}

// Delete удаляет период недоступности
// Доступно только мастерам заведения
func (s *Service) Delete(ctx context.Context, unavailabilityID int64, req *models.DeleteUnavailabilityRequest) error {
	s.logger.Info("Delete: deleting unavailability id=%d by user=%d", unavailabilityID, req.UserID)

	unavailability, err := s.unavailabilityRepo.GetByID(ctx, unavailabilityID)
	if err != nil {
		if errors.Is(err, unavailabilityRepo.ErrUnavailabilityNotFound) {
			s.logger.Warn("Delete: unavailability id=%d not found", unavailabilityID)
			return ErrUnavailabilityNotFound
		}
		s.logger.Error("Delete: repository error for unavailability id=%d: %v", unavailabilityID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа мастера
	if err := s.checkProfessionalAccess(ctx, unavailability.EstablishmentID, req.UserID); err != nil {
		return err
	}

	if err := s.unavailabilityRepo.Delete(ctx, unavailabilityID); err != nil {
		if errors.Is(err, unavailabilityRepo.ErrUnavailabilityNotFound) {
			s.logger.Warn("Delete: unavailability id=%d not found during deletion", unavailabilityID)
			return ErrUnavailabilityNotFound
		}
		s.logger.Error("Delete: repository error for unavailability id=%d: %v", unavailabilityID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted unavailability id=%d", unavailabilityID)
	return nil
}

// checkProfessionalAccess проверяет, что пользователь является мастером заведения
func (s *Service) checkProfessionalAccess(ctx context.Context, establishmentID int64, userID int64) error {
	establishment, err := s.establishmentClient.GetEstablishment(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, establishmentClient.ErrEstablishmentNotFound) {
			s.logger.Warn("checkProfessionalAccess: establishment id=%d not found", establishmentID)
			return ErrEstablishmentNotFound
		}
		s.logger.Error("checkProfessionalAccess: failed to get establishment id=%d: %v", establishmentID, err)
		return fmt.Errorf("%w: checkProfessionalAccess - failed to get establishment: %v", ErrInternal, err)
	}

	for _, professionalID := range establishment.ProfessionalIDs {
		if professionalID == userID {
			return nil
		}
	}

	s.logger.Warn("checkProfessionalAccess: user=%d is not a professional of establishment=%d", userID, establishmentID)
	return ErrAccessDenied
}
