package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// SettingsHandler reads and writes the member-facing notification
// preferences.  The toggles are stored verbatim; actual delivery is a
// collaborator concern.
type SettingsHandler struct {
    Settings store.SettingsStore
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(st store.SettingsStore) *SettingsHandler {
    if st == nil {
        panic("nil settings store passed to NewSettingsHandler")
    }
    return &SettingsHandler{Settings: st}
}

// Get handles GET /v1/settings, returning defaults when nothing has
// been saved.
func (h *SettingsHandler) Get(c echo.Context) error {
    s, err := h.Settings.Get(c.Request().Context())
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, s)
}

// Save handles PUT /v1/settings.
func (h *SettingsHandler) Save(c echo.Context) error {
    var body model.UserSettings
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := h.Settings.Save(c.Request().Context(), body); err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, body)
}
