package model

// Announcement is an admin-posted campus notice shown on the dashboard.
// Announcements are append-only and listed newest first.
type Announcement struct {
    ID          string `json:"id"`
    Title       string `json:"title"`
    Content     string `json:"content"`
    Date        string `json:"date"` // posting date, YYYY-MM-DD
    IsImportant bool   `json:"isImportant"`
}
