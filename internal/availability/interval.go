package availability

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// Interval полуоткрытый временной интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Строгие неравенства означают, что граничные случаи не считаются пересечением:
// - Слот 11:30-12:00, запись 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Covers проверяет, что интервал полностью покрывает other
func (i Interval) Covers(other Interval) bool {
	return !i.Start.After(other.Start) && !i.End.Before(other.End)
}

// IsValid проверяет корректность интервала (конец строго позже начала)
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// busyIntervals собирает занятые интервалы дня из записей и периодов недоступности
// Отмененные записи время не занимают
func busyIntervals(appointments []*domain.Appointment, unavailabilities []*domain.Unavailability) []Interval {
	busy := make([]Interval, 0, len(appointments)+len(unavailabilities))

	for _, appt := range appointments {
		if !appt.CountsAsBusy() {
			continue
		}
		busy = append(busy, Interval{Start: appt.StartAt, End: appt.EndAt})
	}

	for _, unav := range unavailabilities {
		busy = append(busy, Interval{Start: unav.StartAt, End: unav.EndAt})
	}

	return busy
}

// overlapsAny проверяет пересечение интервала хотя бы с одним из busy
func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// parseScheduleTime парсит время "HH:MM" на указанную дату
// Возвращает false при отсутствии или некорректном формате -
// вызывающая сторона трактует это как "нет доступности", не как ошибку
func parseScheduleTime(value *string, date time.Time) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}

	parsed, err := time.Parse(domain.TimeFormat, stripSeconds(*value))
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}

// stripSeconds отбрасывает секунды из "HH:MM:SS" (формат некоторых хранилищ)
func stripSeconds(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}
