package availability

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
)

// Slot дискретный слот для записи: [StartAt, EndAt), длительность равна
// длительности услуги
type Slot struct {
	StartAt time.Time
	EndAt   time.Time
}

// EnumerateSlots генерирует доступные для записи слоты на один календарный день
//
// Слоты перебираются от времени открытия с фиксированным шагом stepMinutes,
// длительность каждого кандидата равна serviceDurationMinutes. Кандидат
// отбрасывается, если:
// - он закончился бы после закрытия (частичные слоты на границе не выдаются);
// - он начинается раньше cutoff (прошедшие слоты не предлагаются;
//   cutoff = текущее время + минимальное время до записи, передается явно);
// - он пересекается с перерывом (курсор при этом перепрыгивает сразу
//   на конец перерыва, а не на следующий шаг);
// - он пересекается хотя бы с одной активной записью или недоступностью
//   (строгий полуоткрытый тест пересечения).
//
// Слоты не переходят через полночь: перебор ограничен временем закрытия
// в пределах того же календарного дня. Закрытый день, отсутствующие или
// некорректные времена расписания дают пустой результат без ошибки.
func EnumerateSlots(
	day time.Time,
	schedule domain.DaySchedule,
	serviceDurationMinutes int,
	appointments []*domain.Appointment,
	unavailabilities []*domain.Unavailability,
	stepMinutes int,
	cutoff time.Time,
) []Slot {
	if serviceDurationMinutes <= 0 {
		return []Slot{}
	}
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}

	if !schedule.IsOpen {
		return []Slot{}
	}

	openAt, ok := parseScheduleTime(schedule.OpenTime, day)
	if !ok {
		return []Slot{}
	}
	closeAt, ok := parseScheduleTime(schedule.CloseTime, day)
	if !ok {
		return []Slot{}
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

	duration := time.Duration(serviceDurationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := make([]Slot, 0)

	for cursor := openAt; cursor.Before(closeAt); {
		candidate := Interval{Start: cursor, End: cursor.Add(duration)}

		// Частичные слоты на границе закрытия не выдаются
		if candidate.End.After(closeAt) {
			break
		}

		// Прошедшие слоты не предлагаются
		if cursor.Before(cutoff) {
			cursor = cursor.Add(step)
			continue
		}

		// Слот, задевающий перерыв, пропускается; курсор перепрыгивает
		// сразу на конец перерыва. В отличие от теста занятости граница
		// здесь закрытая: слот, упирающийся концом ровно в начало
		// перерыва, тоже не выдается
		if breakInterval != nil &&
			candidate.Start.Before(breakInterval.End) &&
			!candidate.End.Before(breakInterval.Start) {
			cursor = breakInterval.End
			continue
		}

		if !overlapsAny(candidate, busy) {
			slots = append(slots, Slot{StartAt: candidate.Start, EndAt: candidate.End})
		}

		cursor = cursor.Add(step)
	}

	return slots
}
