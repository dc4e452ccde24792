package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/dbmetrics"
	"github.com/hoteleiro/HFD-ReservationService/pkg/psqlbuilder"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

var reservationColumns = []string{
	"id",
	"room_id",
	"start_date",
	"end_date",
	"title",
	"status",
	"people",
	"nightly_rate",
	"rate_per_person",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists reservations and their guest and payment lists.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpdateFields is a partial update applied by Update. Nil fields are left
// untouched.
type UpdateFields struct {
	RoomID        *int64
	Start         *types.DateString
	End           *types.DateString
	Title         *string
	People        *int
	RatePerPerson *float64
	Notes         *string
}

// Empty reports whether the patch changes nothing.
func (f UpdateFields) Empty() bool {
	return f.RoomID == nil && f.Start == nil && f.End == nil &&
		f.Title == nil && f.People == nil && f.RatePerPerson == nil && f.Notes == nil
}

// Create inserts a reservation together with its guests and payments.
// When the context carries an open transaction the whole write is atomic;
// callers creating guests alongside the reservation should run inside one.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"start_date",
			"end_date",
			"title",
			"status",
			"people",
			"nightly_rate",
			"rate_per_person",
			"notes",
		).
		Values(
			res.RoomID,
			res.Start.String(),
			res.End.String(),
			res.Title,
			res.Status,
			res.People,
			res.NightlyRate,
			res.RatePerPerson,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	for i := range res.Guests {
		if err := r.insertGuest(ctx, executor, res.ID, &res.Guests[i]); err != nil {
			return nil, err
		}
	}
	for i := range res.Payments {
		if err := r.insertPayment(ctx, executor, res.ID, &res.Payments[i]); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (r *Repository) insertGuest(ctx context.Context, executor DBExecutor, reservationID int64, guest *domain.Guest) error {
	query, args, err := psqlbuilder.Insert("reservation_guests").
		Columns("reservation_id", "registry_id", "name", "titular").
		Values(reservationID, guest.RegistryID, guest.Name, guest.Titular).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertGuest - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&guest.ID); err != nil {
		return fmt.Errorf("%w: insertGuest - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) insertPayment(ctx context.Context, executor DBExecutor, reservationID int64, payment *domain.Payment) error {
	query, args, err := psqlbuilder.Insert("reservation_payments").
		Columns("reservation_id", "method", "amount", "paid_at").
		Values(reservationID, payment.Method, payment.Amount, payment.PaidAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertPayment - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID); err != nil {
		return fmt.Errorf("%w: insertPayment - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID fetches one reservation with its guests and payments.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	if err := r.loadGuests(ctx, executor, res); err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, executor, res); err != nil {
		return nil, err
	}

	return res, nil
}

// ListByWindow fetches reservations whose [start, end) range intersects
// the window in filter. Bars that merely touch the window edges are
// excluded, matching checkout-day semantics.
//
// Inside a transaction the rows are locked FOR UPDATE, which is what the
// conflict check during create/confirm relies on.
func (r *Repository) ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Lt{"start_date": filter.To.String()}).
		Where(squirrel.Gt{"end_date": filter.From.String()})

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}

	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("room_id ASC, start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdatePlacement applies a confirmed move or resize: only the room and
// date range change, everything else is untouched.
func (r *Repository) UpdatePlacement(ctx context.Context, id int64, roomID int64, start, end types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("room_id", roomID).
		Set("start_date", start.String()).
		Set("end_date", end.String()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePlacement - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePlacement - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePlacement - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Update merges a partial edit from the reservation editor back into the
// stored record.
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if fields.Empty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.RoomID != nil {
		updateBuilder = updateBuilder.Set("room_id", *fields.RoomID)
	}
	if fields.Start != nil {
		updateBuilder = updateBuilder.Set("start_date", fields.Start.String())
	}
	if fields.End != nil {
		updateBuilder = updateBuilder.Set("end_date", fields.End.String())
	}
	if fields.Title != nil {
		updateBuilder = updateBuilder.Set("title", *fields.Title)
	}
	if fields.People != nil {
		updateBuilder = updateBuilder.Set("people", *fields.People)
	}
	if fields.RatePerPerson != nil {
		updateBuilder = updateBuilder.Set("rate_per_person", *fields.RatePerPerson)
	}
	if fields.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *fields.Notes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel soft-cancels a reservation, keeping it for history.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) loadGuests(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	query, args, err := psqlbuilder.Select("id", "registry_id", "name", "titular").
		From("reservation_guests").
		Where(squirrel.Eq{"reservation_id": res.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadGuests - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadGuests - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]domain.Guest, 0)
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.RegistryID, &g.Name, &g.Titular); err != nil {
			return fmt.Errorf("%w: loadGuests - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadGuests - rows error: %v", ErrScanRow, err)
	}

	res.Guests = guests
	return nil
}

func (r *Repository) loadPayments(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	query, args, err := psqlbuilder.Select("id", "method", "amount", "paid_at").
		From("reservation_payments").
		Where(squirrel.Eq{"reservation_id": res.ID}).
		OrderBy("paid_at ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadPayments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadPayments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Method, &p.Amount, &p.PaidAt); err != nil {
			return fmt.Errorf("%w: loadPayments - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadPayments - rows error: %v", ErrScanRow, err)
	}

	res.Payments = payments
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservationRow(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var startDate, endDate sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&startDate,
		&endDate,
		&res.Title,
		&res.Status,
		&res.People,
		&res.NightlyRate,
		&res.RatePerPerson,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Start = types.NewDateString(startDate.Time)
	res.End = types.NewDateString(endDate.Time)
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations scans a multi-row result. Guest and payment lists are
// not loaded here; the board only needs placement and title.
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
