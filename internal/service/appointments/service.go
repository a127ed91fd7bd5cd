package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	appointmentRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/appointment"
	establishmentClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo     AppointmentRepository
	establishmentClient EstablishmentServiceClient
	logger              Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	establishmentClient EstablishmentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:     appointmentRepo,
		establishmentClient: establishmentClient,
		logger:              logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - пользователь может видеть только свою запись
// или если он является мастером заведения
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkClientAccess(ctx, appointment, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetEstablishmentAppointments получает записи заведения с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отмененных записей
// Доступно только мастерам заведения
func (s *Service) GetEstablishmentAppointments(ctx context.Context, req *models.GetEstablishmentAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetEstablishmentAppointments: fetching appointments for establishment=%d, user=%d", req.EstablishmentID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа мастера
	if err := s.checkProfessionalAccess(ctx, req.EstablishmentID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetEstablishmentAppointments: invalid filter for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByEstablishmentWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetEstablishmentAppointments: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: GetEstablishmentAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEstablishmentAppointments: successfully fetched %d appointments for establishment=%d", len(appointments), req.EstablishmentID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись, мастер - любую запись заведения
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	// Отменить запись может её владелец или мастер заведения
	if appointment.ClientID != req.UserID {
		if err := s.checkProfessionalAccess(ctx, appointment.EstablishmentID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно только мастерам заведения
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только мастер заведения)
	if err := s.checkProfessionalAccess(ctx, appointment.EstablishmentID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// checkClientAccess проверяет, что пользователь имеет доступ к записи
// Пользователь может видеть свою запись или если он мастер заведения
func (s *Service) checkClientAccess(ctx context.Context, appointment *domain.Appointment, userID int64) error {
	// Если пользователь владелец записи - доступ разрешён
	if appointment.ClientID == userID {
		return nil
	}

	if err := s.checkProfessionalAccess(ctx, appointment.EstablishmentID, userID); err != nil {
		// Ошибка уже залогирована в checkProfessionalAccess
		return ErrAccessDenied
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

	// Проверяем, что userID в списке мастеров
	for _, professionalID := range establishment.ProfessionalIDs {
		if professionalID == userID {
			s.logger.Info("checkProfessionalAccess: user=%d is professional of establishment=%d", userID, establishmentID)
			return nil
		}
	}

	s.logger.Warn("checkProfessionalAccess: user=%d is not a professional of establishment=%d", userID, establishmentID)
	return ErrAccessDenied
}
