package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

// Понедельник, 10 ноября 2025
var testDay = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

func workingDay() domain.DaySchedule {
	return domain.DaySchedule{
		IsOpen:     true,
		OpenTime:   ptr.Ptr("09:00"),
		CloseTime:  ptr.Ptr("18:00"),
		BreakStart: ptr.Ptr("12:00"),
		BreakEnd:   ptr.Ptr("14:00"),
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 10, hour, minute, 0, 0, time.UTC)
}

func appt(id int64, start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		EstablishmentID: 1,
		StartAt:         start,
		EndAt:           end,
		Status:          status,
	}
}

func unav(id int64, start, end time.Time) *domain.Unavailability {
	return &domain.Unavailability{
		ID:              id,
		EstablishmentID: 1,
		StartAt:         start,
		EndAt:           end,
		Type:            domain.UnavailabilityVacation,
	}
}

func slotStarts(slots []Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartAt.Format(domain.TimeFormat)
	}
	return starts
}

func TestEnumerateSlots_FullDayWithBreak(t *testing.T) {
	// Рабочий день 09:00-18:00, перерыв 12:00-14:00, услуга 60 минут,
	// записей нет, текущее время до начала дня
	cutoff := at(8, 0)

	slots := EnumerateSlots(testDay, workingDay(), 60, nil, nil, 30, cutoff)

	expected := []string{
		"09:00", "09:30", "10:00", "10:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}
	assert.Equal(t, expected, slotStarts(slots))

	// Длительность каждого слота равна длительности услуги,
	// конец не выходит за время закрытия
	closeAt := at(18, 0)
	for _, s := range slots {
		assert.Equal(t, 60*time.Minute, s.EndAt.Sub(s.StartAt))
		assert.False(t, s.EndAt.After(closeAt))
	}
}

func TestEnumerateSlots_ClosedDay(t *testing.T) {
	schedule := domain.DaySchedule{IsOpen: false}

	slots := EnumerateSlots(testDay, schedule, 30, nil, nil, 30, at(0, 0))

	assert.Empty(t, slots)
}

func TestEnumerateSlots_MissingTimes(t *testing.T) {
	// IsOpen=true, но времена не заданы - дефектные данные дают
	// пустой результат, а не ошибку
	schedule := domain.DaySchedule{IsOpen: true}

	slots := EnumerateSlots(testDay, schedule, 30, nil, nil, 30, at(0, 0))

	assert.Empty(t, slots)
}

func TestEnumerateSlots_MalformedTimes(t *testing.T) {
	schedule := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("9 утра"),
		CloseTime: ptr.Ptr("18:00"),
	}

	slots := EnumerateSlots(testDay, schedule, 30, nil, nil, 30, at(0, 0))

	assert.Empty(t, slots)
}

func TestEnumerateSlots_StripsSecondsFromStoredTimes(t *testing.T) {
	schedule := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("10:00:00"),
		CloseTime: ptr.Ptr("12:00:00"),
	}

	slots := EnumerateSlots(testDay, schedule, 30, nil, nil, 30, at(0, 0))

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestEnumerateSlots_PastCutoff(t *testing.T) {
	// Запись на сегодня: слоты раньше текущего времени не предлагаются
	cutoff := at(15, 10)

	slots := EnumerateSlots(testDay, workingDay(), 60, nil, nil, 30, cutoff)

	assert.Equal(t, []string{"15:30", "16:00", "16:30", "17:00"}, slotStarts(slots))
	for _, s := range slots {
		assert.False(t, s.StartAt.Before(cutoff))
	}
}

func TestEnumerateSlots_RejectsOverlappingAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(9, 20), at(9, 40), domain.StatusConfirmed),
		appt(2, at(15, 0), at(16, 0), domain.StatusPending),
	}

	slots := EnumerateSlots(testDay, workingDay(), 30, appointments, nil, 30, at(0, 0))

	starts := slotStarts(slots)
	assert.NotContains(t, starts, "09:00") // задевает запись 09:20-09:40
	assert.NotContains(t, starts, "09:30")
	assert.NotContains(t, starts, "15:00")
	assert.NotContains(t, starts, "15:30")
	// Граничащие слоты не конфликтуют
	assert.Contains(t, starts, "16:00")
	assert.Contains(t, starts, "14:30")
}

func TestEnumerateSlots_CancelledAppointmentsDoNotBlock(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(10, 0), at(11, 0), domain.StatusCancelled),
	}

	slots := EnumerateSlots(testDay, workingDay(), 30, appointments, nil, 30, at(0, 0))

	assert.Contains(t, slotStarts(slots), "10:00")
	assert.Contains(t, slotStarts(slots), "10:30")
}

func TestEnumerateSlots_RejectsUnavailabilities(t *testing.T) {
	unavailabilities := []*domain.Unavailability{
		unav(1, at(14, 0), at(16, 0)),
	}

	slots := EnumerateSlots(testDay, workingDay(), 30, nil, unavailabilities, 30, at(0, 0))

	starts := slotStarts(slots)
	assert.NotContains(t, starts, "14:00")
	assert.NotContains(t, starts, "15:30")
	assert.Contains(t, starts, "16:00")
}

func TestEnumerateSlots_NoPartialSlotAtClosing(t *testing.T) {
	// Услуга 90 минут: последний допустимый старт 16:30 (конец ровно 18:00)
	slots := EnumerateSlots(testDay, workingDay(), 90, nil, nil, 30, at(0, 0))

	starts := slotStarts(slots)
	require.NotEmpty(t, starts)
	assert.Equal(t, "16:30", starts[len(starts)-1])
}

func TestEnumerateSlots_NoSlotsIntersectBreak(t *testing.T) {
	slots := EnumerateSlots(testDay, workingDay(), 45, nil, nil, 30, at(0, 0))

	breakInterval := Interval{Start: at(12, 0), End: at(14, 0)}
	for _, s := range slots {
		candidate := Interval{Start: s.StartAt, End: s.EndAt}
		assert.False(t, candidate.Overlaps(breakInterval),
			"слот %s пересекает перерыв", s.StartAt.Format(domain.TimeFormat))
	}
}

func TestEnumerateSlots_DefaultStep(t *testing.T) {
	// Некорректный шаг заменяется дефолтным (30 минут)
	slots := EnumerateSlots(testDay, workingDay(), 60, nil, nil, 0, at(0, 0))

	assert.Contains(t, slotStarts(slots), "09:30")
}

func TestEnumerateSlots_ZeroDuration(t *testing.T) {
	slots := EnumerateSlots(testDay, workingDay(), 0, nil, nil, 30, at(0, 0))

	assert.Empty(t, slots)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{
			name:     "частичное пересечение",
			a:        Interval{at(11, 30), at(12, 0)},
			b:        Interval{at(11, 20), at(11, 40)},
			expected: true,
		},
		{
			name:     "граничат в конце - нет пересечения",
			a:        Interval{at(11, 30), at(12, 0)},
			b:        Interval{at(12, 0), at(12, 30)},
			expected: false,
		},
		{
			name:     "граничат в начале - нет пересечения",
			a:        Interval{at(11, 30), at(12, 0)},
			b:        Interval{at(11, 0), at(11, 30)},
			expected: false,
		},
		{
			name:     "вложенный интервал",
			a:        Interval{at(10, 0), at(12, 0)},
			b:        Interval{at(10, 30), at(11, 0)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}
