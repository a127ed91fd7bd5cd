package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a client appointment at an establishment
// Интервал записи полуоткрытый: [StartAt, EndAt)
type Appointment struct {
	ID              int64
	EstablishmentID int64
	ClientID        int64
	ServiceID       int64
	StartAt         time.Time
	EndAt           time.Time
	Status          AppointmentStatus

	// Denormalized data for history and conflict messages
	ServiceName  string
	ServicePrice float64
	ClientName   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAsBusy returns true if the appointment occupies its interval
// Занятость определяют все статусы, кроме отмененного
func (a *Appointment) CountsAsBusy() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinished returns true if the appointment is completed or was a no-show
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}

// DurationMinutes возвращает длительность записи в минутах
func (a *Appointment) DurationMinutes() int {
	return int(a.EndAt.Sub(a.StartAt) / time.Minute)
}

// EstablishmentAppointmentsFilter фильтр для получения записей заведения
type EstablishmentAppointmentsFilter struct {
	EstablishmentID int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time         // Конец периода (опционально, если nil - без ограничения)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}
