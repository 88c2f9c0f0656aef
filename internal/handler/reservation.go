package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
)

// ReservationHandler exposes the member-facing reservation operations:
// submitting a request, browsing history, and acknowledging decisions.
type ReservationHandler struct {
    Booking *service.Booking
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(booking *service.Booking) *ReservationHandler {
    if booking == nil {
        panic("nil booking service passed to NewReservationHandler")
    }
    return &ReservationHandler{Booking: booking}
}

// createRequest is the JSON body of POST /v1/reservations.  All fields
// are strings; date is YYYY-MM-DD, times are HH:MM.
type createRequest struct {
    SpaceID   string `json:"spaceId"`
    UserName  string `json:"userName"`
    Purpose   string `json:"purpose"`
    Date      string `json:"date"`
    StartTime string `json:"startTime"`
    EndTime   string `json:"endTime"`
}

// Create handles POST /v1/reservations.  A valid candidate is stored
// as pending and returned with its generated id and createdAt; the
// first failed policy check is returned as plain text for the form to
// display.
func (h *ReservationHandler) Create(c echo.Context) error {
    var body createRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    res, err := h.Booking.Create(c.Request().Context(), schedule.Candidate{
        SpaceID:   body.SpaceID,
        UserName:  body.UserName,
        Purpose:   body.Purpose,
        Date:      body.Date,
        StartTime: body.StartTime,
        EndTime:   body.EndTime,
    })
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusCreated, res)
}

// List handles GET /v1/reservations?date=YYYY-MM-DD.  Results are
// newest first; omitting date returns the full history.
func (h *ReservationHandler) List(c echo.Context) error {
    out, err := h.Booking.List(c.Request().Context(), c.QueryParam("date"))
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// Unread handles GET /v1/reservations/unread?user=...  It returns the
// requester's decided reservations whose status change has not been
// acknowledged yet, powering the notification badge.
func (h *ReservationHandler) Unread(c echo.Context) error {
    user := c.QueryParam("user")
    if user == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user is required"})
    }
    out, err := h.Booking.Unread(c.Request().Context(), user)
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// Acknowledge handles POST /v1/reservations/:id/ack, marking a decided
// reservation as seen.
func (h *ReservationHandler) Acknowledge(c echo.Context) error {
    if err := h.Booking.Acknowledge(c.Request().Context(), c.Param("id")); err != nil {
        return respondErr(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/stats for the dashboard counters.
func (h *ReservationHandler) Stats(c echo.Context) error {
    s, err := h.Booking.Stats(c.Request().Context())
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, s)
}
