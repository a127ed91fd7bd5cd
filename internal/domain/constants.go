package domain

// Default booking policy values
const (
	DefaultSlotStepMinutes  = 30
	DefaultAdvanceDays      = 30 // Горизонт по умолчанию для публичных страниц
	DefaultMinNoticeMinutes = 0
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 240
	MinAdvanceDays              = 0
	MaxAdvanceDays              = 365 // 1 year
	MinNoticeMinutesLimit       = 0
	MaxNoticeMinutesLimit       = 10080 // 1 week
	MaxNotesLength              = 500
	MaxReasonLength             = 500
	MaxCancellationReasonLength = 500
	MaxRangeDays                = 31 // Максимальный период для выгрузки диапазонов доступности
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время в расписании
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ValidStatuses список всех допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
