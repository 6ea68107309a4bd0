package refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Refund) error
	GetByID(ctx context.Context, id string) (*Refund, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Refund, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ref *Refund) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.refunds").
		Columns("booking_id", "amount_cents", "percentage", "reason", "external_ref", "status").
		Values(ref.BookingID, ref.AmountCents, ref.Percentage, ref.Reason, ref.ExternalRef, ref.Status).
		Suffix("RETURNING id, processed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create refund query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ref.ID, &ref.ProcessedAt); err != nil {
		return fmt.Errorf("create refund failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Refund, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(refundColumns()...).
		From("public.refunds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get refund query failed: %w", err)
	}

	var ref Refund
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&ref.ID, &ref.BookingID, &ref.AmountCents, &ref.Percentage,
		&ref.Reason, &ref.ExternalRef, &ref.Status, &ref.ProcessedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("refund not found")
		}
		return nil, fmt.Errorf("get refund failed: %w", err)
	}
	return &ref, nil
}

func (r *pgxRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Refund, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(refundColumns()...).
		From("public.refunds").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("processed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list refunds query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list refunds failed: %w", err)
	}
	defer rows.Close()

	var refunds []*Refund
	for rows.Next() {
		var ref Refund
		if err := rows.Scan(
			&ref.ID, &ref.BookingID, &ref.AmountCents, &ref.Percentage,
			&ref.Reason, &ref.ExternalRef, &ref.Status, &ref.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan refund failed: %w", err)
		}
		refunds = append(refunds, &ref)
	}

	return refunds, nil
}

func refundColumns() []string {
	return []string{"id", "booking_id", "amount_cents", "percentage", "reason", "external_ref", "status", "processed_at"}
}
