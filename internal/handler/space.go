package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
)

// SpaceHandler serves the static space catalog and the per-day
// availability views derived from it.
type SpaceHandler struct {
    Catalog *model.Catalog
    Booking *service.Booking
}

// NewSpaceHandler constructs a SpaceHandler.
func NewSpaceHandler(catalog *model.Catalog, booking *service.Booking) *SpaceHandler {
    if catalog == nil || booking == nil {
        panic("nil dependency passed to NewSpaceHandler")
    }
    return &SpaceHandler{Catalog: catalog, Booking: booking}
}

// List handles GET /v1/spaces and returns the full catalog.
func (h *SpaceHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Catalog.Spaces())
}

// Get handles GET /v1/spaces/:id.
func (h *SpaceHandler) Get(c echo.Context) error {
    sp, ok := h.Catalog.Get(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
    }
    return c.JSON(http.StatusOK, sp)
}

// Availability handles GET /v1/spaces/:id/availability?date=YYYY-MM-DD.
// It returns the slot map for the member-facing time picker and the
// maximal free ranges for the requested day.
func (h *SpaceHandler) Availability(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
    }
    av, err := h.Booking.Availability(c.Request().Context(), c.Param("id"), date)
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, av)
}

// Suggest handles GET /v1/spaces/:id/suggest?date=...&start=HH:MM&user=...
// and returns the policy-driven suggested end time for a session
// starting at the given slot.
func (h *SpaceHandler) Suggest(c echo.Context) error {
    date := c.QueryParam("date")
    start := c.QueryParam("start")
    user := c.QueryParam("user")
    if date == "" || start == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date and start are required"})
    }
    end, err := h.Booking.SuggestEnd(c.Request().Context(), c.Param("id"), date, user, start)
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"startTime": start, "endTime": end})
}
