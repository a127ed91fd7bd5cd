package domain

import "time"

// DaySchedule расписание работы заведения на один день недели
// Времена в формате "HH:MM"; nil = не задано.
// Инварианты (при IsOpen=true): OpenTime < CloseTime,
// OpenTime <= BreakStart < BreakEnd <= CloseTime, если перерыв задан.
// Некорректные данные трактуются как "нет доступности", а не как ошибка.
type DaySchedule struct {
	IsOpen     bool
	OpenTime   *string
	CloseTime  *string
	BreakStart *string
	BreakEnd   *string
}

// HasBreak returns true if a midday break is defined
func (d DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// WeeklySchedule недельное расписание заведения
// Единственное место, где день недели превращается в расписание:
// именованные поля вместо числовых индексов исключают путаницу
// между конвенциями 0=Sunday и 0=Monday.
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForDate возвращает расписание на день недели указанной даты
func (w WeeklySchedule) ForDate(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}
