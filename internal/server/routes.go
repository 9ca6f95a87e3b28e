package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agelookup/internal/config"
	"agelookup/internal/handlers"
	"agelookup/internal/handlers/api"
)

// Routes holds what the route handlers depend on.
type Routes struct {
	Loader handlers.PageLoader
	Pages  *config.YAMLConfig // nil uses built-in messages
	DB     handlers.Pinger    // nil when no database is configured
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(r Routes) {
	// Initialize handlers
	ageHandler := handlers.NewAgeHandler(r.Loader, s.Cfg, r.Pages)
	probeHandler := handlers.NewProbeHandler(r.DB)
	lookupAPI := api.NewLookupHandler(r.Loader)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON page data
	s.App.Get("/api/lookup", lookupAPI.Lookup)
	s.App.Use("/api", api.NotFound)

	// Page
	s.App.Get("/", ageHandler.Index)
}
