package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id, reusing the caller's when sent
func RequestIDMiddleware(c rweb.Context) error {
	id := strings.TrimSpace(headerValue(c.Request(), requestIDHeader))
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Response().SetHeader(requestIDHeader, id)
	return c.Next()
}

// headerValue looks a request header up by name regardless of case.
// rweb matches keys exactly and clients differ on X-Request-ID vs X-Request-Id.
func headerValue(req rweb.ItfRequest, key string) string {
	for _, h := range req.Headers() {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

// CorsMiddleware opens the read-only API to other origins.
// Pages are not shared cross-origin.
func CorsMiddleware(c rweb.Context) error {
	if !strings.HasPrefix(c.Request().Path(), "/api/") {
		return c.Next()
	}

	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusNoContent)
		return nil
	}

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")
	// Same-origin framing is allowed so the standalone design pages can sit side by side
	c.Response().SetHeader("X-Frame-Options", "SAMEORIGIN")

	// The Tailwind play CDN compiles classes in the browser and injects a style tag
	csp := []string{
		"default-src 'self'",
		"script-src 'self' https://cdn.tailwindcss.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:", // calculator covers come from a public image host
		"font-src 'self' data:",
		"connect-src 'self'",
		"frame-ancestors 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()
	requestID, _ := c.Get("request_id").(string)

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"request_id", requestID,
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"request_id", requestID,
		"duration", time.Since(start),
		"error", err,
	)

	return err
}
