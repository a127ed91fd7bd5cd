package get_establishment_appointments

import (
	"context"

	"github.com/t1mofey/SLN-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetEstablishmentAppointments(ctx context.Context, req *models.GetEstablishmentAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
