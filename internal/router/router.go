package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/UnimationKorea/saesoon-campus-0113/internal/handler"    // handlers implementing the endpoints
    "github.com/UnimationKorea/saesoon-campus-0113/internal/middleware" // admin token middleware
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // The /healthz endpoint is used by load balancers and monitoring
    // systems to verify that the service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the member-facing endpoints.  None of them
// require authentication: a member is identified only by the free-text
// name they submit with a reservation.
func RegisterPublic(e *echo.Echo, sp *handler.SpaceHandler, rs *handler.ReservationHandler, an *handler.AnnouncementHandler, st *handler.SettingsHandler) {
    // Space catalog and per-day availability
    e.GET("/v1/spaces", sp.List)
    e.GET("/v1/spaces/:id", sp.Get)
    e.GET("/v1/spaces/:id/availability", sp.Availability)
    e.GET("/v1/spaces/:id/suggest", sp.Suggest)

    // Reservation submission and history
    e.POST("/v1/reservations", rs.Create)
    e.GET("/v1/reservations", rs.List)
    e.GET("/v1/reservations/unread", rs.Unread)
    e.POST("/v1/reservations/:id/ack", rs.Acknowledge)
    e.GET("/v1/stats", rs.Stats)

    // Campus notices and notification preferences
    e.GET("/v1/announcements", an.List)
    e.GET("/v1/settings", st.Get)
    e.PUT("/v1/settings", st.Save)
}

// RegisterAdmin registers the administrator surface.  Login is open;
// everything else sits behind the AdminAuth middleware validating the
// token issued at login, plus a role check.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
    e.POST("/v1/admin/login", a.Login)

    g := e.Group("/v1/admin")
    g.Use(middleware.AdminAuth(jwtSecret))
    g.Use(middleware.RequireRole("admin"))
    g.GET("/reservations", a.Pending)
    g.POST("/reservations/:id/approve", a.Approve)
    g.POST("/reservations/:id/reject", a.Reject)
    g.POST("/announcements", a.CreateAnnouncement)
}
