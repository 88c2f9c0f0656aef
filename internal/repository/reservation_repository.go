package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/google/uuid"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// ReservationRepo persists reservations in the reservations table.  It
// satisfies store.ReservationStore.  The table layout:
//
//  id         CHAR(36) PRIMARY KEY      -- UUID assigned at creation
//  space_id   VARCHAR(64)
//  user_name  VARCHAR(191)
//  purpose    TEXT
//  date       CHAR(10)                  -- YYYY-MM-DD
//  start_time CHAR(5)                   -- HH:MM
//  end_time   CHAR(5)
//  status     ENUM('pending','confirmed','cancelled')
//  created_at DATETIME(3)               -- UTC
//  is_read    TINYINT(1)
//
// ListBySpaceAndDate orders by (created_at, id), which reproduces
// insertion order since created_at is assigned monotonically at create
// time.
type ReservationRepo struct {
    db    *sql.DB
    clock store.Clock
}

// NewReservationRepo returns a ReservationRepo bound to the given
// database.  A nil clock falls back to the real clock.
func NewReservationRepo(db *sql.DB, clock store.Clock) *ReservationRepo {
    if clock == nil {
        clock = store.RealClock{}
    }
    return &ReservationRepo{db: db, clock: clock}
}

const reservationCols = `id, space_id, user_name, purpose, date, start_time, end_time, status, created_at, is_read`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
    var r model.Reservation
    var status string
    if err := row.Scan(&r.ID, &r.SpaceID, &r.UserName, &r.Purpose, &r.Date,
        &r.StartTime, &r.EndTime, &status, &r.CreatedAt, &r.IsRead); err != nil {
        return nil, err
    }
    r.Status = model.Status(status)
    return &r, nil
}

func collectReservations(rows *sql.Rows) ([]model.Reservation, error) {
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        r, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *r)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Create inserts a new pending reservation, assigning the ID and
// creation timestamp when absent.  The stored record is returned.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
    stored := *res
    if stored.ID == "" {
        stored.ID = uuid.New().String()
    }
    if stored.CreatedAt.IsZero() {
        stored.CreatedAt = r.clock.Now()
    }
    stored.Status = model.StatusPending
    stored.IsRead = true

    const q = `INSERT INTO reservations (id, space_id, user_name, purpose, date, start_time, end_time, status, created_at, is_read)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q,
        stored.ID, stored.SpaceID, stored.UserName, stored.Purpose, stored.Date,
        stored.StartTime, stored.EndTime, string(stored.Status),
        stored.CreatedAt.UTC(), stored.IsRead,
    )
    if err != nil {
        return nil, err
    }
    return &stored, nil
}

// GetByID fetches a single reservation or store.ErrNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
    const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
    res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return res, nil
}

// ListBySpaceAndDate returns the space's reservations for a date in
// insertion order, optionally narrowed to one status.
func (r *ReservationRepo) ListBySpaceAndDate(ctx context.Context, spaceID, date string, status model.Status) ([]model.Reservation, error) {
    q := `SELECT ` + reservationCols + ` FROM reservations WHERE space_id = ? AND date = ?`
    args := []any{spaceID, date}
    if status != "" {
        q += ` AND status = ?`
        args = append(args, string(status))
    }
    q += ` ORDER BY created_at ASC, id ASC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// ListByUser matches the trimmed user name case-insensitively,
// optionally narrowed to one date.
func (r *ReservationRepo) ListByUser(ctx context.Context, userName, date string) ([]model.Reservation, error) {
    q := `SELECT ` + reservationCols + ` FROM reservations WHERE LOWER(TRIM(user_name)) = LOWER(TRIM(?))`
    args := []any{userName}
    if date != "" {
        q += ` AND date = ?`
        args = append(args, date)
    }
    q += ` ORDER BY created_at ASC, id ASC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// ListAll returns every reservation, newest first.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationCols + ` FROM reservations ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// ListByStatus returns reservations in one lifecycle state, newest first.
func (r *ReservationRepo) ListByStatus(ctx context.Context, status model.Status) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationCols + ` FROM reservations WHERE status = ? ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q, string(status))
    if err != nil {
        return nil, err
    }
    return collectReservations(rows)
}

// SetStatus transitions a pending reservation to a terminal state
// inside a transaction.  The row is locked, the current status checked
// against the lifecycle rules, and is_read reset to false so the
// requester-facing view surfaces the change.
func (r *ReservationRepo) SetStatus(ctx context.Context, id string, next model.Status) (*model.Reservation, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const sel = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ? FOR UPDATE`
    res, err := scanReservation(tx.QueryRowContext(ctx, sel, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    if !res.Status.CanTransitionTo(next) {
        return nil, store.ErrInvalidTransition
    }

    const upd = `UPDATE reservations SET status = ?, is_read = 0 WHERE id = ?`
    if _, err := tx.ExecContext(ctx, upd, string(next), id); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true

    res.Status = next
    res.IsRead = false
    return res, nil
}

// MarkRead flags the reservation as acknowledged by the requester.
func (r *ReservationRepo) MarkRead(ctx context.Context, id string) error {
    const q = `UPDATE reservations SET is_read = 1 WHERE id = ?`
    result, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Distinguish "already read" from "no such row".
        var one int
        if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM reservations WHERE id = ?`, id).Scan(&one); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return store.ErrNotFound
            }
            return err
        }
    }
    return nil
}
