package policy

import (
	"context"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
)

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BookingPolicy, error)
	Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error)
	Delete(ctx context.Context, establishmentID int64) error
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
