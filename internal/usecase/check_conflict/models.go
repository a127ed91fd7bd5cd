package check_conflict

import "time"

// Вид проверяемого интервала
const (
	TargetAppointment    = "appointment"    // Интервал новой или редактируемой записи
	TargetUnavailability = "unavailability" // Интервал новой или редактируемой недоступности
)

// Request модель запроса на проверку интервала
type Request struct {
	UserID          int64     // ID мастера, выполняющего проверку
	EstablishmentID int64     // ID заведения
	StartAt         time.Time // Начало интервала
	EndAt           time.Time // Конец интервала (не включается)
	Target          string    // Что проверяется: appointment или unavailability

	// Исключает редактируемую сущность из проверки - редактирование
	// не должно конфликтовать с самим собой
	ExcludeAppointmentID    *int64
	ExcludeUnavailabilityID *int64
}

// Response модель ответа с результатом проверки
type Response struct {
	HasConflict bool   // Найден ли конфликт
	Kind        string // Тип конфликта: overlap, unavailability, appointment
	Severity    string // Серьезность: block или warning
	Message     string // Человекочитаемое описание конфликта
}
