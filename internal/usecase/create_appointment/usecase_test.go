package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/clientservice"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
	"github.com/t1mofey/SLN-BookingService/pkg/types"
)

// Стабы зависимостей

type stubAppointmentRepo struct {
	overlapping []*domain.Appointment
	created     *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	appointment.ID = 101
	appointment.CreatedAt = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	appointment.UpdatedAt = appointment.CreatedAt
	s.created = appointment
	return appointment, nil
}

func (s *stubAppointmentRepo) GetOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Appointment, error) {
	return s.overlapping, nil
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

func (s *stubPolicyRepo) GetByEstablishment(_ context.Context, establishmentID int64) (*domain.BookingPolicy, error) {
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

type stubClientClient struct {
	profile *clientservice.ClientProfile
	err     error
}

func (s *stubClientClient) GetClientWithGracefulDegradation(_ context.Context, _ int64) (*clientservice.ClientProfile, error) {
	return s.profile, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
var bookingDay = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

// Текущее время для тестов: за неделю до дня записи
var testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func openWeek() establishmentservice.WeeklySchedule {
	day := establishmentservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("18:00"),
	}
	return establishmentservice.WeeklySchedule{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  establishmentservice.DaySchedule{IsOpen: false},
		Sunday:    establishmentservice.DaySchedule{IsOpen: false},
	}
}

func testEstablishment() *establishmentservice.Establishment {
	return &establishmentservice.Establishment{
		ID:              1,
		Name:            "Салон №1",
		ProfessionalIDs: []int64{77},
		WorkingHours:    openWeek(),
	}
}

func testService() *establishmentservice.Service {
	return &establishmentservice.Service{
		ID:              5,
		EstablishmentID: 1,
		Name:            "Стрижка",
		DurationMinutes: 60,
		Price:           ptr.Ptr(1500.0),
		IsActive:        true,
	}
}

func newTestUseCase(
	appointmentRepo *stubAppointmentRepo,
	unavailabilityRepo *stubUnavailabilityRepo,
	policy *domain.BookingPolicy,
	establishment *establishmentservice.Establishment,
	service *establishmentservice.Service,
	client *stubClientClient,
) *UseCase {
	uc := NewUseCase(
		appointmentRepo,
		unavailabilityRepo,
		&stubPolicyRepo{policy: policy},
		&stubEstablishmentClient{establishment: establishment, service: service},
		client,
		stubTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:        42,
		EstablishmentID: 1,
		ServiceID:       5,
		Date:            bookingDay,
		StartTime:       types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubAppointmentRepo{}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна", LastName: "Иванова"}}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2025-11-10", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Анна Иванова", *resp.ClientName)

	require.NotNil(t, repo.created)
	assert.Equal(t, bookingDay.Add(10*time.Hour), repo.created.StartAt)
	assert.Equal(t, bookingDay.Add(11*time.Hour), repo.created.EndAt)
}

func TestExecute_ConflictWithAppointment(t *testing.T) {
	existing := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         bookingDay.Add(10*time.Hour + 30*time.Minute),
		EndAt:           bookingDay.Add(11*time.Hour + 30*time.Minute),
		Status:          domain.StatusConfirmed,
		ClientName:      ptr.Ptr("Мария"),
	}
	repo := &stubAppointmentRepo{overlapping: []*domain.Appointment{existing}}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTimeConflict)
	assert.Contains(t, err.Error(), "Мария")
	assert.Nil(t, repo.created)
}

func TestExecute_ConflictWithUnavailability(t *testing.T) {
	unavailability := &domain.Unavailability{
		ID:              3,
		EstablishmentID: 1,
		StartAt:         bookingDay.Add(9 * time.Hour),
		EndAt:           bookingDay.Add(12 * time.Hour),
		Type:            domain.UnavailabilityVacation,
	}
	repo := &stubAppointmentRepo{}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{items: []*domain.Unavailability{unavailability}}, nil, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTimeConflict)
	assert.Contains(t, err.Error(), "отпуск")
	assert.Nil(t, repo.created)
}

func TestExecute_TouchingAppointmentIsNotConflict(t *testing.T) {
	// Запись заканчивается ровно в 10:00 - граничный случай, конфликта нет
	existing := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         bookingDay.Add(9 * time.Hour),
		EndAt:           bookingDay.Add(10 * time.Hour),
		Status:          domain.StatusConfirmed,
	}
	repo := &stubAppointmentRepo{overlapping: []*domain.Appointment{existing}}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_DateInPast(t *testing.T) {
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	policy := &domain.BookingPolicy{
		EstablishmentID:  1,
		SlotStepMinutes:  30,
		AdvanceDays:      3,
		MinNoticeMinutes: 0,
	}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, policy, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_TooLateToBook(t *testing.T) {
	policy := &domain.BookingPolicy{
		EstablishmentID:  1,
		SlotStepMinutes:  30,
		AdvanceDays:      30,
		MinNoticeMinutes: 120,
	}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, policy, testEstablishment(), testService(), client)
	uc.timeProvider = fixedTimeProvider{now: bookingDay.Add(9 * time.Hour)} // День записи, 09:00

	// 10:00 при minNotice=120 минут уже недоступно
	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_EstablishmentClosed(t *testing.T) {
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	req := validRequest()
	req.Date = time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC) // Воскресенье

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEstablishmentClosed)
}

func TestExecute_ServiceInactive(t *testing.T) {
	service := testService()
	service.IsActive = false
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil, testEstablishment(), service, client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ClientServiceDegraded(t *testing.T) {
	// При недоступности ClientService запись создается без имени клиента
	repo := &stubAppointmentRepo{}
	client := &stubClientClient{err: clientservice.ErrServiceDegraded}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.ClientName)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.ClientName)
}

func TestExecute_ClientNotFound(t *testing.T) {
	client := &stubClientClient{err: clientservice.ErrClientNotFound}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_CancelledAppointmentIgnored(t *testing.T) {
	existing := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         bookingDay.Add(10 * time.Hour),
		EndAt:           bookingDay.Add(11 * time.Hour),
		Status:          domain.StatusCancelled,
	}
	repo := &stubAppointmentRepo{overlapping: []*domain.Appointment{existing}}
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(repo, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	client := &stubClientClient{profile: &clientservice.ClientProfile{ID: 42, FirstName: "Анна"}}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil, testEstablishment(), testService(), client)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"zero establishment", func(r *Request) { r.EstablishmentID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
