package create_unavailability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	"github.com/t1mofey/SLN-BookingService/pkg/ptr"
)

// Стабы зависимостей

type stubAppointmentRepo struct {
	overlapping []*domain.Appointment
}

func (s *stubAppointmentRepo) GetOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Appointment, error) {
	return s.overlapping, nil
}

type stubUnavailabilityRepo struct {
	items   []*domain.Unavailability
	created *domain.Unavailability
}

func (s *stubUnavailabilityRepo) Create(_ context.Context, unavailability *domain.Unavailability) (*domain.Unavailability, error) {
	unavailability.ID = 55
	s.created = unavailability
	return unavailability, nil
}

func (s *stubUnavailabilityRepo) ListByEstablishment(_ context.Context, _ int64, _, _ *time.Time) ([]*domain.Unavailability, error) {
	return s.items, nil
}

type stubEstablishmentClient struct {
	establishment *establishmentservice.Establishment
}

func (s *stubEstablishmentClient) GetEstablishment(_ context.Context, _ int64) (*establishmentservice.Establishment, error) {
	if s.establishment == nil {
		return nil, establishmentservice.ErrEstablishmentNotFound
	}
	return s.establishment, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

var periodStart = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
var periodEnd = time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)

func testEstablishment() *establishmentservice.Establishment {
	return &establishmentservice.Establishment{
		ID:              1,
		Name:            "Салон №1",
		ProfessionalIDs: []int64{77},
	}
}

func newTestUseCase(
	appointmentRepo *stubAppointmentRepo,
	unavailabilityRepo *stubUnavailabilityRepo,
	establishment *establishmentservice.Establishment,
) *UseCase {
	return NewUseCase(
		appointmentRepo,
		unavailabilityRepo,
		&stubEstablishmentClient{establishment: establishment},
		stubTxManager{},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		UserID:          77,
		EstablishmentID: 1,
		StartAt:         periodStart,
		EndAt:           periodEnd,
		Type:            "vacation",
		Reason:          ptr.Ptr("Ежегодный отпуск"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubUnavailabilityRepo{}
	uc := newTestUseCase(&stubAppointmentRepo{}, repo, testEstablishment())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ID)
	assert.False(t, resp.RequiresConfirmation)
	assert.Empty(t, resp.Warning)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.UnavailabilityVacation, repo.created.Type)
	assert.Equal(t, periodStart, repo.created.StartAt)
	assert.Equal(t, periodEnd, repo.created.EndAt)
}

func TestExecute_OverlapWithUnavailabilityBlocks(t *testing.T) {
	existing := &domain.Unavailability{
		ID:              3,
		EstablishmentID: 1,
		StartAt:         periodStart.AddDate(0, 0, 3),
		EndAt:           periodEnd.AddDate(0, 0, 3),
		Type:            domain.UnavailabilityIllness,
	}
	repo := &stubUnavailabilityRepo{items: []*domain.Unavailability{existing}}
	uc := newTestUseCase(&stubAppointmentRepo{}, repo, testEstablishment())

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTimeConflict)
	assert.Contains(t, err.Error(), "болезнь")
	assert.Nil(t, repo.created)
}

func TestExecute_OverlapWithAppointmentRequiresConfirmation(t *testing.T) {
	appointment := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         periodStart.Add(10 * time.Hour),
		EndAt:           periodStart.Add(11 * time.Hour),
		Status:          domain.StatusConfirmed,
		ClientName:      ptr.Ptr("Мария"),
	}
	repo := &stubUnavailabilityRepo{}
	uc := newTestUseCase(&stubAppointmentRepo{overlapping: []*domain.Appointment{appointment}}, repo, testEstablishment())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.RequiresConfirmation)
	assert.Contains(t, resp.Warning, "Мария")
	assert.Zero(t, resp.ID)
	assert.Nil(t, repo.created, "без подтверждения недоступность не создается")
}

func TestExecute_ForceCreatesOverAppointments(t *testing.T) {
	appointment := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         periodStart.Add(10 * time.Hour),
		EndAt:           periodStart.Add(11 * time.Hour),
		Status:          domain.StatusConfirmed,
	}
	repo := &stubUnavailabilityRepo{}
	uc := newTestUseCase(&stubAppointmentRepo{overlapping: []*domain.Appointment{appointment}}, repo, testEstablishment())

	req := validRequest()
	req.Force = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ID)
	assert.False(t, resp.RequiresConfirmation)
	assert.NotEmpty(t, resp.Warning)
	require.NotNil(t, repo.created)
}

func TestExecute_CancelledAppointmentIgnored(t *testing.T) {
	appointment := &domain.Appointment{
		ID:              7,
		EstablishmentID: 1,
		StartAt:         periodStart.Add(10 * time.Hour),
		EndAt:           periodStart.Add(11 * time.Hour),
		Status:          domain.StatusCancelled,
	}
	repo := &stubUnavailabilityRepo{}
	uc := newTestUseCase(&stubAppointmentRepo{overlapping: []*domain.Appointment{appointment}}, repo, testEstablishment())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.RequiresConfirmation)
	require.NotNil(t, repo.created)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, testEstablishment())

	req := validRequest()
	req.UserID = 999

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_EstablishmentNotFound(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrEstablishmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubUnavailabilityRepo{}, testEstablishment())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero establishment", func(r *Request) { r.EstablishmentID = 0 }},
		{"missing period", func(r *Request) { r.StartAt = time.Time{} }},
		{"inverted period", func(r *Request) { r.StartAt, r.EndAt = r.EndAt, r.StartAt }},
		{"empty period", func(r *Request) { r.EndAt = r.StartAt }},
		{"unknown type", func(r *Request) { r.Type = "holiday" }},
		{"unknown recurrence", func(r *Request) { r.Recurrence = ptr.Ptr("yearly") }},
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

func TestExecute_WeeklyRecurrenceStoredAsIs(t *testing.T) {
	repo := &stubUnavailabilityRepo{}
	uc := newTestUseCase(&stubAppointmentRepo{}, repo, testEstablishment())

	req := validRequest()
	req.Recurrence = ptr.Ptr("weekly")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, repo.created.Recurrence)
	assert.Equal(t, domain.RecurrenceWeekly, *repo.created.Recurrence)
	require.NotNil(t, resp.Recurrence)
	assert.Equal(t, "weekly", *resp.Recurrence)
}
