package unavailability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/t1mofey/SLN-BookingService/internal/domain"
	"github.com/t1mofey/SLN-BookingService/pkg/dbmetrics"
	"github.com/t1mofey/SLN-BookingService/pkg/psqlbuilder"
)

var unavailabilityColumns = []string{
	"id",
	"establishment_id",
	"start_at",
	"end_at",
	"type",
	"reason",
	"recurrence",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с периодами недоступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория недоступностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый период недоступности
func (r *Repository) Create(ctx context.Context, unavailability *domain.Unavailability) (*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unavailabilities").
		Columns(
			"establishment_id",
			"start_at",
			"end_at",
			"type",
			"reason",
			"recurrence",
		).
		Values(
			unavailability.EstablishmentID,
			unavailability.StartAt,
			unavailability.EndAt,
			unavailability.Type,
			unavailability.Reason,
			unavailability.Recurrence,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&unavailability.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	unavailability.CreatedAt = createdAt.Time
	unavailability.UpdatedAt = updatedAt.Time

	return unavailability, nil
}

// GetByID получает период недоступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(unavailabilityColumns...).
		From("unavailabilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	unavailability, err := scanUnavailabilityRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrUnavailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan unavailability: %v", ErrScanRow, err)
	}

	return unavailability, nil
}

// ListByEstablishment получает периоды недоступности заведения
// Если указан период, возвращаются недоступности, пересекающиеся с [start, end)
func (r *Repository) ListByEstablishment(ctx context.Context, establishmentID int64, start, end *time.Time) ([]*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(unavailabilityColumns...).
		From("unavailabilities").
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		OrderBy("start_at ASC")

	if start != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *start})
	}
	if end != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *end})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEstablishment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEstablishment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	unavailabilities := make([]*domain.Unavailability, 0)
	for rows.Next() {
		unavailability, err := scanUnavailabilityRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEstablishment - scan row: %v", ErrScanRow, err)
		}
		unavailabilities = append(unavailabilities, unavailability)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEstablishment - rows error: %v", ErrScanRow, err)
	}

	return unavailabilities, nil
}

// Delete удаляет период недоступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("unavailabilities").
		Where(squirrel.Eq{"id": id}).
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
		return ErrUnavailabilityNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUnavailabilityRow(row rowScanner) (*domain.Unavailability, error) {
	var unavailability domain.Unavailability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&unavailability.ID,
		&unavailability.EstablishmentID,
		&unavailability.StartAt,
		&unavailability.EndAt,
		&unavailability.Type,
		&unavailability.Reason,
		&unavailability.Recurrence,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	unavailability.CreatedAt = createdAt.Time
	unavailability.UpdatedAt = updatedAt.Time

	return &unavailability, nil
}
