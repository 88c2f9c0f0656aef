package repository

import (
    "context"
    "database/sql"

    "github.com/google/uuid"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// AnnouncementRepo persists campus notices in the announcements table:
//
//  id           CHAR(36) PRIMARY KEY
//  title        VARCHAR(191)
//  content      TEXT
//  date         CHAR(10)      -- posting date, YYYY-MM-DD
//  is_important TINYINT(1)
//  created_at   DATETIME(3)   -- UTC, drives newest-first ordering
type AnnouncementRepo struct {
    db    *sql.DB
    clock store.Clock
}

// NewAnnouncementRepo returns an AnnouncementRepo bound to the given
// database.
func NewAnnouncementRepo(db *sql.DB, clock store.Clock) *AnnouncementRepo {
    if clock == nil {
        clock = store.RealClock{}
    }
    return &AnnouncementRepo{db: db, clock: clock}
}

// Create inserts a notice, assigning ID and posting date when absent.
func (r *AnnouncementRepo) Create(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
    stored := *a
    if stored.ID == "" {
        stored.ID = uuid.New().String()
    }
    now := r.clock.Now()
    if stored.Date == "" {
        stored.Date = now.Format("2006-01-02")
    }
    const q = `INSERT INTO announcements (id, title, content, date, is_important, created_at)
               VALUES (?, ?, ?, ?, ?, ?)`
    if _, err := r.db.ExecContext(ctx, q,
        stored.ID, stored.Title, stored.Content, stored.Date, stored.IsImportant, now.UTC(),
    ); err != nil {
        return nil, err
    }
    return &stored, nil
}

// List returns all notices, newest first.
func (r *AnnouncementRepo) List(ctx context.Context) ([]model.Announcement, error) {
    const q = `SELECT id, title, content, date, is_important
               FROM announcements ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Announcement, 0)
    for rows.Next() {
        var a model.Announcement
        if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.IsImportant); err != nil {
            return nil, err
        }
        out = append(out, a)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
