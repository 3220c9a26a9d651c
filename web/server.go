package web

import (
	"calcdesigns/config"
	"calcdesigns/web/pages/designs"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server from cfg
func NewServer(cfg config.Config) *rweb.Server {
	return NewTestServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.Verbose,
	}, cfg)
}

// NewTestServer builds the server with caller supplied options,
// so tests can ask for a dynamic port and a ready channel
func NewTestServer(opts rweb.ServerOptions, cfg config.Config) *rweb.Server {
	s := rweb.NewServer(opts)

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(RequestIDMiddleware)       // X-Request-ID
	s.Use(CorsMiddleware)            // CORS for the read-only API
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	def := designs.Selection{Set: cfg.DefaultSet, Design: cfg.DefaultDesign}
	if !def.Valid() {
		logger.Info("Configured default design is invalid, using design 1",
			"set", cfg.DefaultSet, "design", cfg.DefaultDesign)
		def = designs.DefaultSelection
	}

	setupRoutes(s, pageHandlers{defaults: def})

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("Calculator design showcase starting", "address", address)
	return s.Run()
}
