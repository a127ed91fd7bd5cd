package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/internal/service/policy/models"
)

// Service сервис для работы с политиками бронирования
type Service struct {
	policyRepo          PolicyRepository
	establishmentClient EstablishmentServiceClient
	logger              Logger
}

// NewService создает новый экземпляр сервиса политик бронирования
func NewService(
	policyRepo PolicyRepository,
	establishmentClient EstablishmentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:          policyRepo,
		establishmentClient: establishmentClient,
		logger:              logger,
	}
}

// Get получает политику бронирования заведения
// Если заведение не настраивало политику, возвращаются дефолтные значения
// Доступно только мастерам заведения
func (s *Service) Get(ctx context.Context, req *models.GetPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching booking policy for establishment=%d, user=%d", req.EstablishmentID, req.UserID)

	if err := s.checkProfessionalAccess(ctx, req.EstablishmentID, req.UserID); err != nil {
		return nil, err
	}

	policy, err := s.policyRepo.GetByEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Get: no policy for establishment=%d, using defaults", req.EstablishmentID)
			return models.FromDomainPolicy(domain.DefaultBookingPolicy(req.EstablishmentID), true), nil
		}
		s.logger.Error("Get: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched policy for establishment=%d", req.EstablishmentID)
	return models.FromDomainPolicy(policy, false), nil
}

// Update создает или обновляет политику бронирования заведения
// Доступно только мастерам заведения
func (s *Service) Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating booking policy for establishment=%d by user=%d", req.EstablishmentID, req.UserID)

	if err := s.checkProfessionalAccess(ctx, req.EstablishmentID, req.UserID); err != nil {
		return nil, err
	}

	if err := validatePolicy(req); err != nil {
		s.logger.Warn("Update: invalid policy for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	policy, err := s.policyRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated policy for establishment=%d", req.EstablishmentID)
	return models.FromDomainPolicy(policy, false), nil
}

// Delete сбрасывает политику бронирования заведения к дефолтным значениям
// Доступно только мастерам заведения
func (s *Service) Delete(ctx context.Context, req *models.DeletePolicyRequest) error {
	s.logger.Info("Delete: resetting booking policy for establishment=%d by user=%d", req.EstablishmentID, req.UserID)

	if err := s.checkProfessionalAccess(ctx, req.EstablishmentID, req.UserID); err != nil {
		return err
	}

	if err := s.policyRepo.Delete(ctx, req.EstablishmentID); err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Delete: no policy to reset for establishment=%d", req.EstablishmentID)
			return ErrPolicyNotFound
		}
		s.logger.Error("Delete: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully reset policy for establishment=%d", req.EstablishmentID)
	return nil
}

// validatePolicy проверяет бизнес-ограничения настроек бронирования
func validatePolicy(req *models.UpdatePolicyRequest) error {
	if req.SlotStepMinutes < domain.MinSlotStepMinutes || req.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("slotStepMinutes must be between %d and %d", domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if req.AdvanceDays < domain.MinAdvanceDays || req.AdvanceDays > domain.MaxAdvanceDays {
		return fmt.Errorf("advanceDays must be between %d and %d", domain.MinAdvanceDays, domain.MaxAdvanceDays)
	}
	if req.MinNoticeMinutes < domain.MinNoticeMinutesLimit || req.MinNoticeMinutes > domain.MaxNoticeMinutesLimit {
		return fmt.Errorf("minNoticeMinutes must be between %d and %d", domain.MinNoticeMinutesLimit, domain.MaxNoticeMinutesLimit)
	}
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
