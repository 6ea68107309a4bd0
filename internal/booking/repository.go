package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfFree inserts the booking only if its interval is still free,
	// serializing check-then-insert per (provider, date). Returns
	// ErrTimeConflict when the slot was taken by the time the insert ran.
	CreateIfFree(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForProviderDate returns the provider's bookings on one calendar
	// date, restricted to the given statuses, ordered by start minute.
	ListForProviderDate(ctx context.Context, providerID string, date time.Time, statuses []Status) ([]*Booking, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	MarkPaid(ctx context.Context, id string, paymentReference string) error

	// MarkRefunded sets status to cancelled and payment status to refunded in
	// one write.
	MarkRefunded(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateIfFree(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Mutual exclusion per (provider, date): two concurrent requests for the
	// same provider-day cannot interleave their overlap check and insert.
	// The lock is released automatically at commit/rollback.
	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`,
		b.ProviderID, b.Date.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("acquire booking lock failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	// Re-check overlap inside the lock. Half-open interval test:
	// existing.start < new.end AND existing.end > new.start.
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"provider_id": b.ProviderID, "booking_date": b.Date}).
		Where(squirrel.Eq{"status": statusStrings(ActiveStatuses)}).
		Where(squirrel.Lt{"start_minute": b.StartMinute + b.DurationMinutes}).
		Where(squirrel.Expr("start_minute + duration_minutes > ?", b.StartMinute)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build overlap check query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrTimeConflict
	}

	query, args, err := psql.Insert("public.bookings").
		Columns(
			"provider_id", "service_id", "customer_id",
			"booking_date", "start_minute", "duration_minutes",
			"status", "payment_status", "amount_cents", "provider_notes",
		).
		Values(
			b.ProviderID, b.ServiceID, b.CustomerID,
			b.Date, b.StartMinute, b.DurationMinutes,
			b.Status, b.PaymentStatus, b.AmountCents, b.ProviderNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// Backstop: the partial unique index on (provider, date, start_minute)
		// also reports a lost race as a conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns()...).
		From("public.bookings b").
		Join("public.providers p ON b.provider_id = p.id").
		Join("public.services s ON b.service_id = s.id").
		Join("public.customers c ON b.customer_id = c.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, args...), &b, nil); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(bookingColumns(), "count(*) OVER() as total_count")
	query := psql.Select(cols...).
		From("public.bookings b").
		Join("public.providers p ON b.provider_id = p.id").
		Join("public.services s ON b.service_id = s.id").
		Join("public.customers c ON b.customer_id = c.id")

	if filter.CustomerID != "" {
		query = query.Where(squirrel.Eq{"b.customer_id": filter.CustomerID})
	}
	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"b.provider_id": filter.ProviderID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.booking_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.booking_date": *filter.DateTo})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.booking_date ASC", "b.start_minute ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b, &total); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForProviderDate(ctx context.Context, providerID string, date time.Time, statuses []Status) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "service_id", "customer_id",
		"booking_date", "start_minute", "duration_minutes",
		"status", "payment_status", "amount_cents",
		"payment_reference", "provider_notes", "created_at", "updated_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{"provider_id": providerID, "booking_date": date}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		OrderBy("start_minute ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list provider-date bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list provider-date bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ProviderID, &b.ServiceID, &b.CustomerID,
			&b.Date, &b.StartMinute, &b.DurationMinutes,
			&b.Status, &b.PaymentStatus, &b.AmountCents,
			&b.PaymentReference, &b.ProviderNotes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	return r.exec(ctx, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}),
		"update booking status")
}

func (r *pgxRepository) MarkPaid(ctx context.Context, id string, paymentReference string) error {
	return r.exec(ctx, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Update("public.bookings").
		Set("payment_status", PaymentPaid).
		Set("payment_reference", paymentReference).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}),
		"mark booking paid")
}

func (r *pgxRepository) MarkRefunded(ctx context.Context, id string) error {
	return r.exec(ctx, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Update("public.bookings").
		Set("status", StatusCancelled).
		Set("payment_status", PaymentRefunded).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}),
		"mark booking refunded")
}

func (r *pgxRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder, op string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build %s query failed: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func bookingColumns() []string {
	return []string{
		"b.id", "b.provider_id", "p.name", "b.service_id", "s.name",
		"b.customer_id", "c.display_name",
		"b.booking_date", "b.start_minute", "b.duration_minutes",
		"b.status", "b.payment_status", "b.amount_cents",
		"b.payment_reference", "b.provider_notes", "b.created_at", "b.updated_at",
	}
}

func scanBooking(row pgx.Row, b *Booking, total *int) error {
	dest := []any{
		&b.ID, &b.ProviderID, &b.ProviderName, &b.ServiceID, &b.ServiceName,
		&b.CustomerID, &b.CustomerName,
		&b.Date, &b.StartMinute, &b.DurationMinutes,
		&b.Status, &b.PaymentStatus, &b.AmountCents,
		&b.PaymentReference, &b.ProviderNotes, &b.CreatedAt, &b.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}
	return row.Scan(dest...)
}

func statusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
