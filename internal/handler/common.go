package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// respondErr maps domain errors onto HTTP responses.  Validation and
// format failures are client errors carrying the human-readable reason;
// unknown IDs map to 404, illegal lifecycle transitions to 409, and
// anything else is reported as a storage failure.
func respondErr(c echo.Context, err error) error {
    var vErr *schedule.ValidationError
    if errors.As(err, &vErr) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": vErr.Reason})
    }
    var fErr *schedule.FormatError
    if errors.As(err, &fErr) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": fErr.Error()})
    }
    switch {
    case errors.Is(err, store.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
    case errors.Is(err, service.ErrSpaceNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "space not found"})
    case errors.Is(err, store.ErrInvalidTransition):
        return c.JSON(http.StatusConflict, echo.Map{"error": "reservation has already been decided"})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
}
