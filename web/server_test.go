package web_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"calcdesigns/config"
	"calcdesigns/web"

	"github.com/rohanthewiz/rweb"
)

// startServer runs the full stack on a dynamic port and returns its base url
func startServer(t *testing.T, cfg config.Config) string {
	t.Helper()

	readyChan := make(chan struct{}, 1)
	srv := web.NewTestServer(rweb.ServerOptions{
		Verbose:   false,
		ReadyChan: readyChan,
		Address:   "localhost:", // Dynamic port assignment
	}, cfg)

	go func() {
		_ = srv.Run()
	}()

	select {
	case <-readyChan:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	return fmt.Sprintf("http://localhost:%s", srv.GetListenPort())
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, string(body)
}

func TestPageRoutes(t *testing.T) {
	baseURL := startServer(t, config.Default())

	t.Run("root shows design 1", func(t *testing.T) {
		resp, body := get(t, baseURL+"/")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
			t.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
		}
		if !strings.Contains(body, `data-design="1"`) {
			t.Error("default page should render design 1")
		}
		if strings.Count(body, `id="design-selector"`) != 1 {
			t.Error("page should carry one selector")
		}
	})

	t.Run("each design", func(t *testing.T) {
		for n := 1; n <= 5; n++ {
			resp, body := get(t, fmt.Sprintf("%s/?design=%d", baseURL, n))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("design %d: expected 200, got %d", n, resp.StatusCode)
			}
			if !strings.Contains(body, fmt.Sprintf(`data-design="%d"`, n)) {
				t.Errorf("design %d not rendered", n)
			}
			if strings.Count(body, "data-design=") != 1 {
				t.Errorf("design %d: expected exactly one variant body", n)
			}
		}
	})

	t.Run("bad selection falls back", func(t *testing.T) {
		for _, q := range []string{"?design=0", "?design=6", "?design=abc", "?set=retro"} {
			resp, body := get(t, baseURL+"/"+q)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", q, resp.StatusCode)
			}
			if !strings.Contains(body, `data-design="1"`) {
				t.Errorf("%s: expected design 1", q)
			}
		}
	})

	t.Run("illustrated set", func(t *testing.T) {
		_, body := get(t, baseURL+"/?design=2&set=illustrated")
		if !strings.Contains(body, `data-set="illustrated"`) {
			t.Error("expected the illustrated set")
		}
		if !strings.Contains(body, "<img") {
			t.Error("illustrated cards should carry images")
		}
	})

	t.Run("standalone design", func(t *testing.T) {
		resp, body := get(t, baseURL+"/designs/classic/3")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(body, "Bold Modern 3D") {
			t.Error("expected the bold design banner")
		}
		if strings.Contains(body, `id="design-selector"`) {
			t.Error("standalone page should not carry the selector")
		}
	})

	t.Run("unknown standalone design", func(t *testing.T) {
		for _, p := range []string{"/designs/classic/9", "/designs/retro/1", "/designs/classic/x"} {
			resp, body := get(t, baseURL+p)
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("%s: expected 404, got %d", p, resp.StatusCode)
			}
			if !strings.Contains(body, "Design not found") {
				t.Errorf("%s: expected not found page", p)
			}
		}
	})

	t.Run("no post route", func(t *testing.T) {
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Post(baseURL+"/", "application/x-www-form-urlencoded", strings.NewReader("design=2"))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			t.Error("posting to the showcase should not succeed")
		}
	})
}

func TestConfiguredDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultDesign = 4
	cfg.DefaultSet = "illustrated"
	baseURL := startServer(t, cfg)

	_, body := get(t, baseURL+"/")
	if !strings.Contains(body, `data-design="4"`) || !strings.Contains(body, `data-set="illustrated"`) {
		t.Error("bare request should show the configured default")
	}

	_, body = get(t, baseURL+"/?design=2&set=classic")
	if !strings.Contains(body, `data-design="2"`) || !strings.Contains(body, `data-set="classic"`) {
		t.Error("explicit selection should override the default")
	}
}

func TestMiddlewareHeaders(t *testing.T) {
	baseURL := startServer(t, config.Default())

	resp, _ := get(t, baseURL+"/")
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected a request id")
	}
	csp := resp.Header.Get("Content-Security-Policy")
	if !strings.Contains(csp, "https://cdn.tailwindcss.com") {
		t.Errorf("CSP should admit the tailwind CDN: %q", csp)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected nosniff")
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Error("pages should not send CORS headers")
	}

	req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/v1/calculators", nil)
	req.Header.Set("X-Request-ID", "review-42")
	apiResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET api: %v", err)
	}
	apiResp.Body.Close()
	if got := apiResp.Header.Get("X-Request-ID"); got != "review-42" {
		t.Errorf("request id should be echoed, got %q", got)
	}
	if apiResp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("API should allow cross origin reads")
	}
}

func TestRequestIDReusedWhateverTheCase(t *testing.T) {
	baseURL := startServer(t, config.Default())

	for _, key := range []string{"X-Request-ID", "X-Request-Id", "x-request-id"} {
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		// Assign the map directly so net/http sends the key as written
		req.Header[key] = []string{"trace-" + key}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("GET health: %v", err)
		}
		resp.Body.Close()
		if got := resp.Header.Get("X-Request-ID"); got != "trace-"+key {
			t.Errorf("%s: request id should be reused, got %q", key, got)
		}
	}

	req, _ := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 65))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("oversized id should be replaced with a uuid, got %q", got)
	}
}

func TestStaticFiles(t *testing.T) {
	baseURL := startServer(t, config.Default())

	resp, body := get(t, baseURL+"/static/css/designs.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css") {
		t.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
	for _, kf := range []string{"@keyframes rise", "@keyframes tilt", "@keyframes shimmer", "@keyframes mesh-pan"} {
		if !strings.Contains(body, kf) {
			t.Errorf("stylesheet missing %s", kf)
		}
	}

	resp, _ = get(t, baseURL+"/static/css/missing.css")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing asset, got %d", resp.StatusCode)
	}

	resp, body = get(t, baseURL+"/favicon.ico")
	if resp.Header.Get("Content-Type") != "image/svg+xml" || !strings.HasPrefix(body, "<svg") {
		t.Error("favicon should be an svg")
	}
}
