package web

import (
	"calcdesigns/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes.
// Everything is GET: the showcase has nothing to submit.
func setupRoutes(s *rweb.Server, h pageHandlers) {
	// Page routes - HTML responses
	// Selector plus the chosen design
	s.Get("/", h.Showcase)
	// One design alone, for side by side review
	s.Get("/designs/:set/:n", h.Standalone)

	// API v1 routes - JSON (or msgpack) responses
	s.Get("/api/v1/calculators", api.ListCalculators)
	s.Get("/api/v1/calculators/:id", api.GetCalculator)
	s.Get("/api/v1/designs", api.ListDesigns)

	// Health check endpoint
	s.Get("/health", api.Health)
}
