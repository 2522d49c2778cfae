package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/http/handlers"
	"github.com/spec-kit/legal-office-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Accounts    *handlers.AccountsHandler
	Blogs       *handlers.BlogsHandler
	Categories  *handlers.CategoriesHandler
	Departments *handlers.DepartmentsHandler
	Contacts    *handlers.ContactsHandler
	Complaints  *handlers.ComplaintsHandler
	Memos       *handlers.MemosHandler
	Reports     *handlers.ReportsHandler
	Leaves      *handlers.LeavesHandler
	Sessions    *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/logout", cfg.Auth.Logout)

	// Contact intake is reachable without a session; the other intents on
	// the same route check for one inside the handler.
	api.Post("/contacts", cfg.Sessions.HandleOptional, cfg.Contacts.Mutate)

	// The session check rides on each route rather than a catch-all group so
	// that a wrong-method request still gets Fiber's 405 instead of a 401.
	session := cfg.Sessions.Handle
	api.Get("/users", session, cfg.Accounts.List)
	api.Post("/users", session, cfg.Accounts.Mutate)
	api.Get("/blogs", session, cfg.Blogs.List)
	api.Post("/blogs", session, cfg.Blogs.Mutate)
	api.Get("/categories", session, cfg.Categories.List)
	api.Post("/categories", session, cfg.Categories.Mutate)
	api.Get("/departments", session, cfg.Departments.List)
	api.Post("/departments", session, cfg.Departments.Mutate)
	api.Get("/contacts", session, cfg.Contacts.List)
	api.Get("/complaints", session, cfg.Complaints.List)
	api.Post("/complaints", session, cfg.Complaints.Mutate)
	api.Get("/memos", session, cfg.Memos.List)
	api.Post("/memos", session, cfg.Memos.Mutate)
	api.Get("/monthly-reports", session, cfg.Reports.List)
	api.Post("/monthly-reports", session, cfg.Reports.Mutate)
	api.Get("/leaves", session, cfg.Leaves.List)
	api.Post("/leaves", session, cfg.Leaves.Mutate)
	api.Get("/leaves/export", session, cfg.Leaves.Export)

	// Older dashboard builds fetch memos under this name.
	api.Get("/tasks", session, cfg.Memos.List)
}
