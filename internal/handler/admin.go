package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/utils"
)

// AdminHandler implements the administrator surface: the passphrase
// login that issues a short-lived token, the pending queue, the
// approve/reject decisions, and announcement posting.  All routes
// except Login assume the AdminAuth middleware has validated the
// token.
type AdminHandler struct {
    Booking       *service.Booking
    Announcements store.AnnouncementStore

    PassHash    string // bcrypt hash of the shared admin passphrase
    JWTSecret   string
    TokenTTLMin int
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(booking *service.Booking, ann store.AnnouncementStore, passHash, jwtSecret string, tokenTTLMin int) *AdminHandler {
    if booking == nil || ann == nil {
        panic("nil dependency passed to NewAdminHandler")
    }
    return &AdminHandler{
        Booking:       booking,
        Announcements: ann,
        PassHash:      passHash,
        JWTSecret:     jwtSecret,
        TokenTTLMin:   tokenTTLMin,
    }
}

// Login handles POST /v1/admin/login.  The body carries the shared
// passphrase; a correct passphrase yields a bearer token for the admin
// routes.  There is deliberately no account model — a single secret
// gates the whole surface.
func (h *AdminHandler) Login(c echo.Context) error {
    var body struct {
        Passphrase string `json:"passphrase"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Passphrase == "" || !utils.VerifyPassphrase(h.PassHash, body.Passphrase) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong passphrase"})
    }
    tok, err := utils.NewAdminToken(h.JWTSecret, h.TokenTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "token":     tok.Token,
        "expiresAt": tok.Exp,
    })
}

// Pending handles GET /v1/admin/reservations and returns the undecided
// queue, newest first.
func (h *AdminHandler) Pending(c echo.Context) error {
    out, err := h.Booking.Pending(c.Request().Context())
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// Approve handles POST /v1/admin/reservations/:id/approve.  The
// reservation is re-checked against the live confirmed set (when the
// policy enables it) and moved to confirmed; a decision event is
// published for downstream consumers.
func (h *AdminHandler) Approve(c echo.Context) error {
    res, err := h.Booking.Approve(c.Request().Context(), c.Param("id"))
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, res)
}

// Reject handles POST /v1/admin/reservations/:id/reject, moving a
// pending reservation to cancelled.
func (h *AdminHandler) Reject(c echo.Context) error {
    res, err := h.Booking.Reject(c.Request().Context(), c.Param("id"))
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusOK, res)
}

// CreateAnnouncement handles POST /v1/admin/announcements.
func (h *AdminHandler) CreateAnnouncement(c echo.Context) error {
    var body struct {
        Title       string `json:"title"`
        Content     string `json:"content"`
        IsImportant bool   `json:"isImportant"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Title == "" || body.Content == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and content are required"})
    }
    ann, err := h.Announcements.Create(c.Request().Context(), &model.Announcement{
        Title:       body.Title,
        Content:     body.Content,
        IsImportant: body.IsImportant,
    })
    if err != nil {
        return respondErr(c, err)
    }
    return c.JSON(http.StatusCreated, ann)
}
