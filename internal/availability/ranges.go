package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// MergeDayRanges строит почасовые диапазоны свободного времени на день
// для витринных страниц ("9h - 12h", "14h - 18h")
//
// В отличие от EnumerateSlots работает с точностью до часа и не отсекает
// прошедшие часы: результат - статический снимок дня для шаринга, а не
// живая лента записи. Последовательные свободные часы склеиваются в один
// диапазон; диапазон закрывается занятым часом или временем закрытия.
//
// Если один период недоступности целиком накрывает рабочие часы дня,
// день пропускается без почасового перебора.
func MergeDayRanges(
	day time.Time,
	schedule domain.DaySchedule,
	appointments []*domain.Appointment,
	unavailabilities []*domain.Unavailability,
) []string {
	if !schedule.IsOpen {
		return nil
	}

	openAt, ok := parseScheduleTime(schedule.OpenTime, day)
	if !ok {
		return nil
	}
	closeAt, ok := parseScheduleTime(schedule.CloseTime, day)
	if !ok {
		return nil
	}

	openHour := openAt.Hour()
	closeHour := closeAt.Hour()
	if closeHour <= openHour {
		return nil
	}

	workingDay := Interval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), openHour, 0, 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), closeHour, 0, 0, 0, day.Location()),
	}

	// Один период недоступности накрывает весь день - день целиком занят
	for _, unav := range unavailabilities {
		blackout := Interval{Start: unav.StartAt, End: unav.EndAt}
		if blackout.Covers(workingDay) {
			return nil
		}
	}

	var breakInterval *Interval
	if schedule.HasBreak() {
		breakStart, okStart := parseScheduleTime(schedule.BreakStart, day)
		breakEnd, okEnd := parseScheduleTime(schedule.BreakEnd, day)
		if okStart && okEnd && breakEnd.After(breakStart) {
			breakInterval = &Interval{Start: breakStart, End: breakEnd}
		}
	}

	busy := busyIntervals(appointments, unavailabilities)

	ranges := make([]string, 0)
	runStart := -1 // Час начала текущего свободного диапазона, -1 = диапазон не открыт

	for hour := openHour; hour < closeHour; hour++ {
		hourSlot := Interval{
			Start: time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()),
			End:   time.Date(day.Year(), day.Month(), day.Day(), hour+1, 0, 0, 0, day.Location()),
		}

		free := !overlapsAny(hourSlot, busy)
		if free && breakInterval != nil && hourSlot.Overlaps(*breakInterval) {
			free = false
		}

		if free {
			if runStart < 0 {
				runStart = hour
			}
			continue
		}

		// Занятый час закрывает открытый диапазон
		if runStart >= 0 {
			ranges = append(ranges, formatHourRange(runStart, hour))
			runStart = -1
		}
	}

	if runStart >= 0 {
		ranges = append(ranges, formatHourRange(runStart, closeHour))
	}

	return ranges
}

// FormatDayRanges склеивает диапазоны дня в одну строку: "9h - 12h / 14h - 18h"
func FormatDayRanges(ranges []string) string {
	return strings.Join(ranges, " / ")
}

func formatHourRange(from, to int) string {
	return fmt.Sprintf("%dh - %dh", from, to)
}
