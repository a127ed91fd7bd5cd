package create_appointment

import (
	"context"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/clientservice"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetOverlapping(ctx context.Context, establishmentID int64, start, end time.Time) ([]*domain.Appointment, error)
}

// UnavailabilityRepository интерфейс репозитория периодов недоступности
type UnavailabilityRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID int64, start, end *time.Time) ([]*domain.Unavailability, error)
}

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BookingPolicy, error)
}

// EstablishmentServiceClient интерфейс клиента для EstablishmentService
type EstablishmentServiceClient interface {
	GetEstablishment(ctx context.Context, establishmentID int64) (*establishmentservice.Establishment, error)
	GetService(ctx context.Context, establishmentID, serviceID int64) (*establishmentservice.Service, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.ClientProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
