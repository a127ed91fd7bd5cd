package get_availability_ranges

import (
	"context"

	getAvailabilityRanges "github.com/t1mofey/SLN-BookingService/internal/usecase/get_availability_ranges"
)

type GetAvailabilityRangesUseCase interface {
	Execute(ctx context.Context, req *getAvailabilityRanges.Request) (*getAvailabilityRanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
