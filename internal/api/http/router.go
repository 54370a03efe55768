package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/api/http/handlers"
	"github.com/supportcrm/dashboard-service/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Tickets           *handlers.TicketsHandler
	Users             *handlers.UsersHandler
	Admin             *handlers.AdminHandler
	SessionMiddleware *session.Middleware
}

// RegisterRoutes wires HTTP routes. Everything under /api requires a
// session; /api/admin additionally requires the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)

	api := app.Group("/api", cfg.SessionMiddleware.Handle)
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Post("/tickets", cfg.Tickets.CreateTicket)
	api.Get("/tickets/stats", cfg.Tickets.TicketStats)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Put("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	api.Put("/tickets/:id/assignee", cfg.Tickets.AssignTicket)
	api.Post("/tickets/:id/comments", cfg.Tickets.AddComment)
	api.Post("/tickets/:id/feedback", cfg.Tickets.SubmitFeedback)
	api.Get("/users", cfg.Users.ListUsers)

	admin := api.Group("/admin", session.RequireAdmin())
	admin.Get("/summary", cfg.Admin.Summary)
	admin.Get("/audit", cfg.Admin.AuditTrail)
}
