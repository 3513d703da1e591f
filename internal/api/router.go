package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/investrack/server/internal/api/handlers"
	mw "github.com/investrack/server/internal/api/middleware"
)

type Dependencies struct {
	ProjectsHandler    *handlers.ProjectsHandler
	InvestorsHandler   *handlers.InvestorsHandler
	InvestmentsHandler *handlers.InvestmentsHandler
	StatusesHandler    *handlers.StatusesHandler
	DefStatusHandler   *handlers.DefStatusHandler
	DashboardHandler   *handlers.DashboardHandler
	HealthHandler      *handlers.HealthHandler

	// Fixed-window rate limiting; applied only when enabled.
	RateLimitEnabled bool
	RateLimitWindow  time.Duration
	RateLimitMax     int
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	if dep.RateLimitEnabled {
		r.Use(mw.RateLimit(dep.RateLimitWindow, dep.RateLimitMax))
	}
	r.Use(chimid.Compress(5))

	// Health endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	r.Route("/api", func(api chi.Router) {
		// Projects
		api.Get("/projects", dep.ProjectsHandler.List)
		api.Get("/projects_with_status", dep.ProjectsHandler.ListWithStatus)
		api.Get("/projects/{id}", dep.ProjectsHandler.Get)
		api.Post("/projects", dep.ProjectsHandler.Create)
		api.Put("/projects/{id}", dep.ProjectsHandler.Update)
		api.Delete("/projects/{id}", dep.ProjectsHandler.Delete)

		// Investors
		api.Get("/investors", dep.InvestorsHandler.List)
		api.Get("/investors_with_details", dep.InvestorsHandler.ListWithDetails)
		api.Get("/investors/{id}", dep.InvestorsHandler.Get)
		api.Post("/investors", dep.InvestorsHandler.Create)
		api.Put("/investors/{id}", dep.InvestorsHandler.Update)
		api.Delete("/investors/{id}", dep.InvestorsHandler.Delete)

		// Investments
		api.Get("/investments_with_details", dep.InvestmentsHandler.ListWithDetails)
		api.Get("/investments/{id}", dep.InvestmentsHandler.Get)
		api.Post("/investments", dep.InvestmentsHandler.Create)
		api.Put("/investments/{id}", dep.InvestmentsHandler.Update)
		api.Delete("/investments/{id}", dep.InvestmentsHandler.Delete)

		// Status log; {id} on GET is a project id, elsewhere a status id.
		api.Get("/statuses", dep.StatusesHandler.List)
		api.Get("/statuses/{id}", dep.StatusesHandler.ListByProject)
		api.Post("/statuses", dep.StatusesHandler.Create)
		api.Put("/statuses/{id}", dep.StatusesHandler.Update)
		api.Delete("/statuses/{id}", dep.StatusesHandler.Delete)

		// Status definitions (reference data)
		api.Get("/defStatus", dep.DefStatusHandler.List)

		// Dashboard
		api.Route("/dashboard", func(d chi.Router) {
			d.Get("/total-active-investment", dep.DashboardHandler.TotalActiveInvestment)
			d.Get("/total-active-investors", dep.DashboardHandler.TotalActiveInvestors)
			d.Get("/total-active-projects", dep.DashboardHandler.TotalActiveProjects)
			d.Get("/latest-activities-timeline", dep.DashboardHandler.LatestActivitiesTimeline)
		})
	})

	return r
}
