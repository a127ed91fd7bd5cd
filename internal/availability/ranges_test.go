package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

func TestMergeDayRanges_FreeDayWithBreak(t *testing.T) {
	ranges := MergeDayRanges(testDay, workingDay(), nil, nil)

	assert.Equal(t, []string{"9h - 12h", "14h - 18h"}, ranges)
}

func TestMergeDayRanges_ClosedDay(t *testing.T) {
	ranges := MergeDayRanges(testDay, domain.DaySchedule{IsOpen: false}, nil, nil)

	assert.Empty(t, ranges)
}

func TestMergeDayRanges_AppointmentSplitsRange(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}

	ranges := MergeDayRanges(testDay, workingDay(), appointments, nil)

	assert.Equal(t, []string{"9h - 10h", "11h - 12h", "14h - 18h"}, ranges)
}

func TestMergeDayRanges_PartialHourBlocksWholeHour(t *testing.T) {
	// Запись 10:15-10:45 занимает весь час 10h-11h при почасовой точности
	appointments := []*domain.Appointment{
		appt(1, at(10, 15), at(10, 45), domain.StatusConfirmed),
	}

	ranges := MergeDayRanges(testDay, workingDay(), appointments, nil)

	assert.Equal(t, []string{"9h - 10h", "11h - 12h", "14h - 18h"}, ranges)
}

func TestMergeDayRanges_WholeDayBlackout(t *testing.T) {
	// Недоступность 06:00-20:00 покрывает рабочие часы 07:00-19:00 целиком,
	// недоступность 09:00-20:00 - только частично
	schedule := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("07:00"),
		CloseTime: ptr.Ptr("19:00"),
	}

	covering := []*domain.Unavailability{
		unav(1, at(6, 0), at(20, 0)),
	}
	assert.Empty(t, MergeDayRanges(testDay, schedule, nil, covering))

	partial := []*domain.Unavailability{
		unav(2, at(9, 0), at(20, 0)),
	}
	assert.Equal(t, []string{"7h - 9h"}, MergeDayRanges(testDay, schedule, nil, partial))
}

func TestMergeDayRanges_BlackoutExactlyCoversWorkingHours(t *testing.T) {
	// Недоступность [09:00, 20:00) при рабочих часах [09:00, 19:00)
	// покрывает день целиком - ни одного диапазона
	schedule := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("19:00"),
	}

	unavailabilities := []*domain.Unavailability{
		unav(1, at(9, 0), at(20, 0)),
	}

	assert.Empty(t, MergeDayRanges(testDay, schedule, nil, unavailabilities))
}

func TestMergeDayRanges_NoPastCutoff(t *testing.T) {
	// Режим витрины - статический снимок: прошедшие часы дня включаются,
	// в отличие от ленты слотов записи
	ranges := MergeDayRanges(testDay, workingDay(), nil, nil)

	assert.Contains(t, ranges, "9h - 12h")
}

func TestMergeDayRanges_CancelledAppointmentsIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(9, 0), at(18, 0), domain.StatusCancelled),
	}

	ranges := MergeDayRanges(testDay, workingDay(), appointments, nil)

	assert.Equal(t, []string{"9h - 12h", "14h - 18h"}, ranges)
}

func TestFormatDayRanges(t *testing.T) {
	assert.Equal(t, "9h - 12h / 14h - 18h", FormatDayRanges([]string{"9h - 12h", "14h - 18h"}))
	assert.Equal(t, "", FormatDayRanges(nil))
}

func TestMergeDayRanges_MissingTimes(t *testing.T) {
	schedule := domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("09:00")}

	assert.Empty(t, MergeDayRanges(testDay, schedule, nil, nil))
}
