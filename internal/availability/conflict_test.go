package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

func TestCheckAppointmentConflict_InvertedInterval(t *testing.T) {
	c := CheckAppointmentConflict(at(12, 0), at(11, 0), nil, nil, nil)

	assert.True(t, c.HasConflict)
	assert.Equal(t, KindOverlap, c.Kind)
	assert.Equal(t, SeverityBlock, c.Severity)

	// Пустой интервал тоже некорректен
	c = CheckAppointmentConflict(at(12, 0), at(12, 0), nil, nil, nil)
	assert.True(t, c.HasConflict)
	assert.Equal(t, KindOverlap, c.Kind)
}

func TestCheckAppointmentConflict_UnavailabilityBlocks(t *testing.T) {
	unavailabilities := []*domain.Unavailability{
		{
			ID:      7,
			StartAt: at(9, 0),
			EndAt:   at(18, 0),
			Type:    domain.UnavailabilityVacation,
			Reason:  ptr.Ptr("ежегодный отпуск"),
		},
	}

	// Запись целиком внутри недоступности
	c := CheckAppointmentConflict(at(10, 0), at(11, 0), nil, unavailabilities, nil)

	assert.True(t, c.HasConflict)
	assert.Equal(t, KindUnavailability, c.Kind)
	assert.Equal(t, SeverityBlock, c.Severity)
	assert.Contains(t, c.Message, "отпуск")
	assert.Contains(t, c.Message, "ежегодный отпуск")
}

func TestCheckAppointmentConflict_UnavailabilityCheckedBeforeAppointments(t *testing.T) {
	// Правила применяются по порядку: недоступность до записей
	appointments := []*domain.Appointment{
		appt(1, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}
	unavailabilities := []*domain.Unavailability{
		unav(2, at(10, 0), at(12, 0)),
	}

	c := CheckAppointmentConflict(at(10, 0), at(11, 0), appointments, unavailabilities, nil)

	assert.Equal(t, KindUnavailability, c.Kind)
}

func TestCheckAppointmentConflict_AppointmentBlocks(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			ID:         3,
			StartAt:    at(10, 0),
			EndAt:      at(11, 0),
			Status:     domain.StatusConfirmed,
			ClientName: ptr.Ptr("Анна Петрова"),
		},
	}

	c := CheckAppointmentConflict(at(10, 30), at(11, 30), appointments, nil, nil)

	assert.True(t, c.HasConflict)
	assert.Equal(t, KindAppointment, c.Kind)
	assert.Equal(t, SeverityBlock, c.Severity)
	assert.Contains(t, c.Message, "Анна Петрова")
	assert.Contains(t, c.Message, "10:00")
	assert.Contains(t, c.Message, "11:00")
}

func TestCheckAppointmentConflict_TouchingIntervalsDoNotConflict(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}
	unavailabilities := []*domain.Unavailability{
		unav(2, at(14, 0), at(16, 0)),
	}

	// Встык после записи и встык до недоступности
	c := CheckAppointmentConflict(at(11, 0), at(12, 0), appointments, unavailabilities, nil)
	assert.False(t, c.HasConflict)

	c = CheckAppointmentConflict(at(13, 0), at(14, 0), appointments, unavailabilities, nil)
	assert.False(t, c.HasConflict)
}

func TestCheckAppointmentConflict_ExcludeSelf(t *testing.T) {
	// Редактирование записи не конфликтует с ней самой
	appointments := []*domain.Appointment{
		appt(5, at(10, 0), at(11, 0), domain.StatusConfirmed),
	}

	c := CheckAppointmentConflict(at(10, 0), at(11, 0), appointments, nil, ptr.Ptr(int64(5)))
	assert.False(t, c.HasConflict)

	// Без excludeID тот же интервал конфликтует
	c = CheckAppointmentConflict(at(10, 0), at(11, 0), appointments, nil, nil)
	assert.True(t, c.HasConflict)
}

func TestCheckAppointmentConflict_CancelledAppointmentsIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, at(10, 0), at(11, 0), domain.StatusCancelled),
	}

	c := CheckAppointmentConflict(at(10, 0), at(11, 0), appointments, nil, nil)

	assert.False(t, c.HasConflict)
}

func TestCheckUnavailabilityConflict_AppointmentIsSoftWarning(t *testing.T) {
	// Асимметрия политик: недоступность поверх записей - предупреждение,
	// мастер может продолжить после подтверждения
	appointments := []*domain.Appointment{
		{
			ID:         1,
			StartAt:    at(10, 0),
			EndAt:      at(11, 0),
			Status:     domain.StatusConfirmed,
			ClientName: ptr.Ptr("Мария"),
		},
	}

	c := CheckUnavailabilityConflict(at(9, 0), at(18, 0), appointments, nil, nil)

	assert.True(t, c.HasConflict)
	assert.Equal(t, KindAppointment, c.Kind)
	assert.Equal(t, SeverityWarning, c.Severity)
	assert.Contains(t, c.Message, "Мария")
}

func TestCheckUnavailabilityConflict_UnavailabilityBlocks(t *testing.T) {
	unavailabilities := []*domain.Unavailability{
		unav(4, at(9, 0), at(12, 0)),
	}

	c := CheckUnavailabilityConflict(at(10, 0), at(11, 0), nil, unavailabilities, nil)

	assert.True(t, c.HasConflict)
	assert.Equal(t, KindUnavailability, c.Kind)
	assert.Equal(t, SeverityBlock, c.Severity)
}

func TestCheckUnavailabilityConflict_ExcludeSelf(t *testing.T) {
	unavailabilities := []*domain.Unavailability{
		unav(4, at(9, 0), at(12, 0)),
	}

	c := CheckUnavailabilityConflict(at(9, 0), at(12, 0), nil, unavailabilities, ptr.Ptr(int64(4)))

	assert.False(t, c.HasConflict)
}

func TestCheckUnavailabilityConflict_NoConflict(t *testing.T) {
	c := CheckUnavailabilityConflict(at(9, 0), at(12, 0), nil, nil, nil)

	assert.False(t, c.HasConflict)
	assert.Empty(t, c.Message)
}
