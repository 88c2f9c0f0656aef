package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// AnnouncementHandler serves the public, read-only side of campus
// notices.  Posting lives on the admin surface.
type AnnouncementHandler struct {
    Announcements store.AnnouncementStore
}

// NewAnnouncementHandler constructs an AnnouncementHandler.
func NewAnnouncementHandler(ann store.AnnouncementStore) *AnnouncementHandler {
    if ann == nil {
        panic("nil announcement store passed to NewAnnouncementHandler")
    }
    return &AnnouncementHandler{Announcements: ann}
}

// List handles GET /v1/announcements, newest first.
func (h *AnnouncementHandler) List(c echo.Context) error {
    out, err := h.Announcements.List(c.Request().Context())
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, out)
}
