package list_unavailabilities

import (
	"context"

	"github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities/models"
)

type UnavailabilityService interface {
	List(ctx context.Context, req *models.ListUnavailabilitiesRequest) (*models.UnavailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
