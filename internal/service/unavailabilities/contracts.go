package unavailabilities

import (
	"context"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// UnavailabilityRepository интерфейс репозитория периодов недоступности
type UnavailabilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unavailability, error)
	ListByEstablishment(ctx context.Context, establishmentID int64, start, end *time.Time) ([]*domain.Unavailability, error)
	Delete(ctx context.Context, id int64) error
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
