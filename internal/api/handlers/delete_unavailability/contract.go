package delete_unavailability

import (
	"context"

	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities/models"
)

type UnavailabilityService interface {
	Delete(ctx context.Context, unavailabilityID int64, req *models.DeleteUnavailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
