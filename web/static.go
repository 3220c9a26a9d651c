package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// Calculator glyph on a blue to purple tile
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">` +
	`<defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1"><stop offset="0" stop-color="#3b82f6"/><stop offset="1" stop-color="#9333ea"/></linearGradient></defs>` +
	`<rect width="64" height="64" rx="14" fill="url(#g)"/>` +
	`<rect x="18" y="12" width="28" height="40" rx="4" fill="none" stroke="white" stroke-width="4"/>` +
	`<line x1="24" y1="22" x2="40" y2="22" stroke="white" stroke-width="4" stroke-linecap="round"/>` +
	`<circle cx="26" cy="32" r="2.5" fill="white"/><circle cx="38" cy="32" r="2.5" fill="white"/>` +
	`<circle cx="26" cy="42" r="2.5" fill="white"/><circle cx="38" cy="42" r="2.5" fill="white"/></svg>`

var contentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".svg": "image/svg+xml",
	".png": "image/png",
	".jpg": "image/jpeg",
}

// loadStatic reads every embedded asset into memory keyed by its path under static/.
// The set is tiny and fixed at build time.
func loadStatic(fsys fs.FS) (map[string][]byte, error) {
	assets := make(map[string][]byte)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return serr.Wrap(err, "failed to read static asset", "path", p)
		}
		assets[p] = data
		return nil
	})
	return assets, err
}

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}
	assets, err := loadStatic(staticFS)
	if err != nil {
		logger.LogErr(err, "static assets unavailable")
		return
	}

	s.Get("/static/*", func(c rweb.Context) error {
		name := strings.TrimPrefix(c.Request().Path(), "/static/")
		data, ok := assets[name]
		if !ok {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if ct, ok := contentTypes[path.Ext(name)]; ok {
			c.Response().SetHeader("Content-Type", ct)
		}
		// Assets are versioned with a ?v= query in the page head
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")
		return c.Bytes(data)
	})
}
