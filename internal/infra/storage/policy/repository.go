package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/pkg/dbmetrics"
	"github.com/t1mofey/SLN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с политиками бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEstablishment получает политику бронирования заведения
// На заведение приходится максимум одна политика; при её отсутствии
// вызывающая сторона применяет дефолтные значения
func (r *Repository) GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"establishment_id",
		"slot_step_minutes",
		"advance_days",
		"min_notice_minutes",
		"created_at",
		"updated_at",
	).
		From("booking_policies").
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEstablishment - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.BookingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.EstablishmentID,
		&policy.SlotStepMinutes,
		&policy.AdvanceDays,
		&policy.MinNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEstablishment - scan policy: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// Upsert создает или обновляет политику бронирования заведения
func (r *Repository) Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_policies").
		Columns(
			"establishment_id",
			"slot_step_minutes",
			"advance_days",
			"min_notice_minutes",
		).
		Values(
			policy.EstablishmentID,
			policy.SlotStepMinutes,
			policy.AdvanceDays,
			policy.MinNoticeMinutes,
		).
		Suffix(`ON CONFLICT (establishment_id) DO UPDATE SET
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			advance_days = EXCLUDED.advance_days,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// Delete удаляет политику бронирования заведения
// После удаления заведение возвращается к дефолтным значениям
func (r *Repository) Delete(ctx context.Context, establishmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_policies").
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}
