package availability

import (
	"fmt"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// ConflictKind тип найденного конфликта
type ConflictKind string

const (
	KindOverlap        ConflictKind = "overlap"        // Некорректный интервал (конец не позже начала)
	KindUnavailability ConflictKind = "unavailability" // Пересечение с периодом недоступности
	KindAppointment    ConflictKind = "appointment"    // Пересечение с существующей записью
)

// ConflictSeverity серьезность конфликта
type ConflictSeverity string

const (
	// SeverityBlock конфликт блокирует операцию
	SeverityBlock ConflictSeverity = "block"
	// SeverityWarning конфликт допускает продолжение после подтверждения
	SeverityWarning ConflictSeverity = "warning"
)

// Conflict результат проверки интервала на конфликты
type Conflict struct {
	HasConflict bool
	Kind        ConflictKind
	Severity    ConflictSeverity
	Message     string
}

// NoConflict результат без конфликтов
func NoConflict() Conflict {
	return Conflict{HasConflict: false}
}

// CheckAppointmentConflict проверяет интервал новой или редактируемой записи
// против существующих записей и периодов недоступности заведения
//
// Правила применяются по порядку, срабатывает первое:
// 1. Конец не позже начала - фатальный конфликт kind=overlap.
// 2. Пересечение с недоступностью - жесткий блок kind=unavailability.
// 3. Пересечение с активной записью - жесткий блок kind=appointment.
//
// excludeID исключает редактируемую запись из проверки: редактирование
// записи не должно конфликтовать с ней самой. Интервалы, граничащие по
// одной точке (end == otherStart), конфликтом не считаются.
func CheckAppointmentConflict(
	start, end time.Time,
	appointments []*domain.Appointment,
	unavailabilities []*domain.Unavailability,
	excludeID *int64,
) Conflict {
	proposed := Interval{Start: start, End: end}
	if !proposed.IsValid() {
		return invalidIntervalConflict()
	}

	if c, ok := findUnavailabilityOverlap(proposed, unavailabilities, nil); ok {
		return c
	}

	if appt, ok := findAppointmentOverlap(proposed, appointments, excludeID); ok {
		return Conflict{
			HasConflict: true,
			Kind:        KindAppointment,
			Severity:    SeverityBlock,
			Message:     appointmentConflictMessage(appt),
		}
	}

	return NoConflict()
}

// CheckUnavailabilityConflict проверяет интервал новой или редактируемой
// недоступности против существующих недоступностей и записей заведения
//
// Асимметрия с CheckAppointmentConflict намеренная: пересечение с
// существующей записью дает МЯГКОЕ предупреждение - мастер вправе закрыть
// время поверх записей, подтвердив действие, тогда как запись поверх
// недоступности или другой записи не создается никогда.
func CheckUnavailabilityConflict(
	start, end time.Time,
	appointments []*domain.Appointment,
	unavailabilities []*domain.Unavailability,
	excludeID *int64,
) Conflict {
	proposed := Interval{Start: start, End: end}
	if !proposed.IsValid() {
		return invalidIntervalConflict()
	}

	if c, ok := findUnavailabilityOverlap(proposed, unavailabilities, excludeID); ok {
		return c
	}

	if appt, ok := findAppointmentOverlap(proposed, appointments, nil); ok {
		return Conflict{
			HasConflict: true,
			Kind:        KindAppointment,
			Severity:    SeverityWarning,
			Message: fmt.Sprintf(
				"на этот период уже есть запись (%s). Создать недоступность поверх существующих записей?",
				appointmentConflictDetails(appt)),
		}
	}

	return NoConflict()
}

func invalidIntervalConflict() Conflict {
	return Conflict{
		HasConflict: true,
		Kind:        KindOverlap,
		Severity:    SeverityBlock,
		Message:     "время окончания должно быть позже времени начала",
	}
}

// findUnavailabilityOverlap ищет первую пересекающуюся недоступность
func findUnavailabilityOverlap(proposed Interval, unavailabilities []*domain.Unavailability, excludeID *int64) (Conflict, bool) {
	for _, unav := range unavailabilities {
		if excludeID != nil && unav.ID == *excludeID {
			continue
		}

		if proposed.Overlaps(Interval{Start: unav.StartAt, End: unav.EndAt}) {
			msg := fmt.Sprintf("пересекается с периодом недоступности (%s)", unav.TypeLabel())
			if unav.Reason != nil && *unav.Reason != "" {
				msg += ": " + *unav.Reason
			}
			return Conflict{
				HasConflict: true,
				Kind:        KindUnavailability,
				Severity:    SeverityBlock,
				Message:     msg,
			}, true
		}
	}
	return Conflict{}, false
}

// findAppointmentOverlap ищет первую пересекающуюся активную запись
func findAppointmentOverlap(proposed Interval, appointments []*domain.Appointment, excludeID *int64) (*domain.Appointment, bool) {
	for _, appt := range appointments {
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if !appt.CountsAsBusy() {
			continue
		}

		if proposed.Overlaps(Interval{Start: appt.StartAt, End: appt.EndAt}) {
			return appt, true
		}
	}
	return nil, false
}

func appointmentConflictMessage(appt *domain.Appointment) string {
	return "пересекается с записью: " + appointmentConflictDetails(appt)
}

// appointmentConflictDetails форматирует детали записи для сообщения о конфликте
func appointmentConflictDetails(appt *domain.Appointment) string {
	clientName := "клиент"
	if appt.ClientName != nil && *appt.ClientName != "" {
		clientName = *appt.ClientName
	}
	return fmt.Sprintf("%s, %s - %s",
		clientName,
		appt.StartAt.Format("02.01.2006 15:04"),
		appt.EndAt.Format("15:04"))
}
