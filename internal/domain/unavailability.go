package domain

import "time"

// UnavailabilityType причина недоступности мастера
type UnavailabilityType string

const (
	UnavailabilityVacation UnavailabilityType = "vacation"
	UnavailabilityIllness  UnavailabilityType = "illness"
	UnavailabilityTraining UnavailabilityType = "training"
	UnavailabilityEvent    UnavailabilityType = "event"
	UnavailabilityOther    UnavailabilityType = "other"
)

// RecurrenceRule правило повторения недоступности
// Хранится и отдается как есть: разворачивание повторений в материализованные
// интервалы нигде не выполняется, движок всегда видит один интервал.
type RecurrenceRule string

const (
	RecurrenceDaily   RecurrenceRule = "daily"
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"
)

// Unavailability период недоступности заведения (отпуск, болезнь, обучение)
// Интервал полуоткрытый: [StartAt, EndAt)
type Unavailability struct {
	ID              int64
	EstablishmentID int64
	StartAt         time.Time
	EndAt           time.Time
	Type            UnavailabilityType
	Reason          *string
	Recurrence      *RecurrenceRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TypeLabel возвращает человекочитаемую метку типа недоступности
// Используется в сообщениях о конфликтах
func (u *Unavailability) TypeLabel() string {
	switch u.Type {
	case UnavailabilityVacation:
		return "отпуск"
	case UnavailabilityIllness:
		return "болезнь"
	case UnavailabilityTraining:
		return "обучение"
	case UnavailabilityEvent:
		return "мероприятие"
	default:
		return "недоступность"
	}
}

// ValidUnavailabilityTypes список допустимых типов недоступности
var ValidUnavailabilityTypes = []UnavailabilityType{
	UnavailabilityVacation,
	UnavailabilityIllness,
	UnavailabilityTraining,
	UnavailabilityEvent,
	UnavailabilityOther,
}

// ValidRecurrenceRules список допустимых правил повторения
var ValidRecurrenceRules = []RecurrenceRule{
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceMonthly,
}
