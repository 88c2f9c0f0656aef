package model

// UserSettings holds the notification preferences of the member-facing
// view.  The toggles are stored and echoed back to the client; actual
// notification delivery is out of scope for this service.
type UserSettings struct {
    EmailNotifications bool `json:"emailNotifications"`
    InAppNotifications bool `json:"inAppNotifications"`
}

// DefaultSettings returns the settings applied before a member has
// saved anything: both notification channels enabled.
func DefaultSettings() UserSettings {
    return UserSettings{EmailNotifications: true, InAppNotifications: true}
}
