package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, w *Window) error
	GetByID(ctx context.Context, id string) (*Window, error)
	ListByProvider(ctx context.Context, providerID string) ([]*Window, error)

	// ListActiveForWeekday returns the provider's active windows for one
	// weekday, ordered by start minute.
	ListActiveForWeekday(ctx context.Context, providerID string, weekday int) ([]*Window, error)

	Update(ctx context.Context, w *Window) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, w *Window) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.availability_windows").
		Columns("provider_id", "weekday", "start_minute", "end_minute", "active").
		Values(w.ProviderID, w.Weekday, w.StartMinute, w.EndMinute, w.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create window query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&w.ID, &w.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrInvalidProvider
		}
		return fmt.Errorf("create window failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Window, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "weekday", "start_minute", "end_minute", "active", "created_at",
	).
		From("public.availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get window query failed: %w", err)
	}

	var w Window
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&w.ID, &w.ProviderID, &w.Weekday, &w.StartMinute, &w.EndMinute, &w.Active, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get window failed: %w", err)
	}
	return &w, nil
}

func (r *pgxRepository) ListByProvider(ctx context.Context, providerID string) ([]*Window, error) {
	return r.list(ctx, squirrel.Eq{"provider_id": providerID})
}

func (r *pgxRepository) ListActiveForWeekday(ctx context.Context, providerID string, weekday int) ([]*Window, error) {
	return r.list(ctx, squirrel.Eq{
		"provider_id": providerID,
		"weekday":     weekday,
		"active":      true,
	})
}

func (r *pgxRepository) list(ctx context.Context, where squirrel.Eq) ([]*Window, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "weekday", "start_minute", "end_minute", "active", "created_at",
	).
		From("public.availability_windows").
		Where(where).
		OrderBy("weekday ASC", "start_minute ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list windows query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list windows failed: %w", err)
	}
	defer rows.Close()

	var windows []*Window
	for rows.Next() {
		var w Window
		if err := rows.Scan(
			&w.ID, &w.ProviderID, &w.Weekday, &w.StartMinute, &w.EndMinute, &w.Active, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan window failed: %w", err)
		}
		windows = append(windows, &w)
	}

	return windows, nil
}

func (r *pgxRepository) Update(ctx context.Context, w *Window) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.availability_windows").
		Set("weekday", w.Weekday).
		Set("start_minute", w.StartMinute).
		Set("end_minute", w.EndMinute).
		Set("active", w.Active).
		Where(squirrel.Eq{"id": w.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update window query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update window failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete window query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete window failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
