package get_availability_ranges

import (
	"context"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByEstablishmentWithFilter(ctx context.Context, filter domain.EstablishmentAppointmentsFilter) ([]*domain.Appointment, error)
}

// UnavailabilityRepository интерфейс репозитория периодов недоступности
type UnavailabilityRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID int64, start, end *time.Time) ([]*domain.Unavailability, error)
}

// EstablishmentServiceClient интерфейс клиента для EstablishmentService
type EstablishmentServiceClient interface {
	GetEstablishment(ctx context.Context, establishmentID int64) (*establishmentservice.Establishment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
