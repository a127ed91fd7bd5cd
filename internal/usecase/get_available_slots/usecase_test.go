package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

// Стабы зависимостей

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) GetByEstablishmentWithFilter(_ context.Context, _ domain.EstablishmentAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubUnavailabilityRepo struct {
	items []*domain.Unavailability
}

func (s *stubUnavailabilityRepo) ListByEstablishment(_ context.Context, _ int64, _, _ *time.Time) ([]*domain.Unavailability, error) {
	return s.items, nil
}

type stubPolicyRepo struct {
	policy *domain.BookingPolicy
}

func (s *stubPolicyRepo) GetByEstablishment(_ context.Context, _ int64) (*domain.BookingPolicy, error) {
	if s.policy == nil {
		return nil, policyRepo.ErrPolicyNotFound
	}
	return s.policy, nil
}

type stubEstablishmentClient struct {
	establishment *establishmentservice.Establishment
	service       *establishmentservice.Service
}

func (s *stubEstablishmentClient) GetEstablishment(_ context.Context, _ int64) (*establishmentservice.Establishment, error) {
	if s.establishment == nil {
		return nil, establishmentservice.ErrEstablishmentNotFound
	}
	return s.establishment, nil
}

func (s *stubEstablishmentClient) GetService(_ context.Context, _, _ int64) (*establishmentservice.Service, error) {
	if s.service == nil {
		return nil, establishmentservice.ErrServiceNotFound
	}
	return s.service, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

// Понедельник, 10 ноября 2025
var slotsDay = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

// Текущее время: за неделю до запрошенного дня
var testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func testEstablishment() *establishmentservice.Establishment {
	day := establishmentservice.DaySchedule{
		IsOpen:     true,
		OpenTime:   ptr.Ptr("09:00"),
		CloseTime:  ptr.Ptr("18:00"),
		BreakStart: ptr.Ptr("12:00"),
		BreakEnd:   ptr.Ptr("14:00"),
	}
	return &establishmentservice.Establishment{
		ID:   1,
		Name: "Салон №1",
		WorkingHours: establishmentservice.WeeklySchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
			Saturday:  establishmentservice.DaySchedule{IsOpen: false},
			Sunday:    establishmentservice.DaySchedule{IsOpen: false},
		},
	}
}

func testService(durationMinutes int) *establishmentservice.Service {
	return &establishmentservice.Service{
		ID:              5,
		EstablishmentID: 1,
		Name:            "Стрижка",
		DurationMinutes: durationMinutes,
		IsActive:        true,
	}
}

func newTestUseCase(
	appointments []*domain.Appointment,
	unavailabilities []*domain.Unavailability,
	policy *domain.BookingPolicy,
	establishment *establishmentservice.Establishment,
	service *establishmentservice.Service,
) *UseCase {
	uc := NewUseCase(
		&stubAppointmentRepo{appointments: appointments},
		&stubUnavailabilityRepo{items: unavailabilities},
		&stubPolicyRepo{policy: policy},
		&stubEstablishmentClient{establishment: establishment, service: service},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func startTimes(resp *Response) []string {
	times := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		times = append(times, slot.StartTime)
	}
	return times
}

func TestExecute_FreeDay(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, testEstablishment(), testService(30))

	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.DurationMinutes)
	// Слот 11:30 не выдается: он упирается концом ровно в начало перерыва
	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	}, startTimes(resp))
}

func TestExecute_AppointmentBlocksSlots(t *testing.T) {
	appointment := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         slotsDay.Add(10 * time.Hour),
		EndAt:           slotsDay.Add(11 * time.Hour),
		Status:          domain.StatusConfirmed,
	}
	uc := newTestUseCase([]*domain.Appointment{appointment}, nil, nil, testEstablishment(), testService(30))

	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.NoError(t, err)

	times := startTimes(resp)
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")
	assert.Contains(t, times, "09:30")
	assert.Contains(t, times, "11:00")
}

func TestExecute_UnavailabilityBlocksSlots(t *testing.T) {
	unavailability := &domain.Unavailability{
		ID:              3,
		EstablishmentID: 1,
		StartAt:         slotsDay.Add(14 * time.Hour),
		EndAt:           slotsDay.Add(18 * time.Hour),
		Type:            domain.UnavailabilityVacation,
	}
	uc := newTestUseCase(nil, []*domain.Unavailability{unavailability}, nil, testEstablishment(), testService(30))

	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.NoError(t, err)

	// Осталась только утренняя часть дня
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, startTimes(resp))
}

func TestExecute_CustomPolicyStep(t *testing.T) {
	policy := &domain.BookingPolicy{
		EstablishmentID:  1,
		SlotStepMinutes:  60,
		AdvanceDays:      30,
		MinNoticeMinutes: 0,
	}
	uc := newTestUseCase(nil, nil, policy, testEstablishment(), testService(60))

	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00", "16:00", "17:00"}, startTimes(resp))
}

func TestExecute_MinNoticeCutsSameDaySlots(t *testing.T) {
	policy := &domain.BookingPolicy{
		EstablishmentID:  1,
		SlotStepMinutes:  30,
		AdvanceDays:      30,
		MinNoticeMinutes: 60,
	}
	uc := newTestUseCase(nil, nil, policy, testEstablishment(), testService(30))
	uc.timeProvider = fixedTimeProvider{now: slotsDay.Add(14 * time.Hour)} // День запроса, 14:00

	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.NoError(t, err)

	// cutoff = 15:00: слоты раньше не предлагаются
	assert.Equal(t, []string{"15:00", "15:30", "16:00", "16:30", "17:00", "17:30"}, startTimes(resp))
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, testEstablishment(), testService(30))

	sunday := time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceInactive(t *testing.T) {
	service := testService(30)
	service.IsActive = false
	uc := newTestUseCase(nil, nil, nil, testEstablishment(), service)

	_, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_EstablishmentNotFound(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil, testService(30))

	_, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.ErrorIs(t, err, ErrEstablishmentNotFound)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	policy := &domain.BookingPolicy{
		EstablishmentID:  1,
		SlotStepMinutes:  30,
		AdvanceDays:      3,
		MinNoticeMinutes: 0,
	}
	uc := newTestUseCase(nil, nil, policy, testEstablishment(), testService(30))

	_, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: slotsDay})
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, testEstablishment(), testService(30))

	_, err := uc.Execute(context.Background(), &Request{EstablishmentID: 1, ServiceID: 5, Date: testNow.AddDate(0, 0, -1)})
	require.ErrorIs(t, err, ErrInvalidDate)
}
