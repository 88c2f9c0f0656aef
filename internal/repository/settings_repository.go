package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
)

// SettingsRepo stores the single member-facing settings row.  The
// table holds at most one row with a fixed key:
//
//  id                   TINYINT PRIMARY KEY  -- always 1
//  email_notifications  TINYINT(1)
//  in_app_notifications TINYINT(1)
type SettingsRepo struct {
    db *sql.DB
}

// NewSettingsRepo returns a SettingsRepo bound to the given database.
func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get returns the saved settings, or the defaults when nothing has
// been saved yet.
func (r *SettingsRepo) Get(ctx context.Context) (model.UserSettings, error) {
    const q = `SELECT email_notifications, in_app_notifications FROM user_settings WHERE id = 1`
    var s model.UserSettings
    err := r.db.QueryRowContext(ctx, q).Scan(&s.EmailNotifications, &s.InAppNotifications)
    if errors.Is(err, sql.ErrNoRows) {
        return model.DefaultSettings(), nil
    }
    if err != nil {
        return model.UserSettings{}, err
    }
    return s, nil
}

// Save upserts the settings row.
func (r *SettingsRepo) Save(ctx context.Context, s model.UserSettings) error {
    const q = `INSERT INTO user_settings (id, email_notifications, in_app_notifications)
               VALUES (1, ?, ?)
               ON DUPLICATE KEY UPDATE email_notifications = VALUES(email_notifications),
                                       in_app_notifications = VALUES(in_app_notifications)`
    _, err := r.db.ExecContext(ctx, q, s.EmailNotifications, s.InAppNotifications)
    return err
}
