package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubConfig map[string]string

func (c stubConfig) GetBool(key string) bool     { return c[key] == "true" }
func (c stubConfig) GetString(key string) string { return c[key] }
func (c stubConfig) Close() error                { return nil }

func (c stubConfig) GetArray(key string) []string {
	var out []string
	for _, v := range strings.Split(c[key], ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := &App{config: stubConfig{
		"server.address.http":         ":0",
		"server.cors.allowed_headers": "Origin, X-Requested-With, Content-Type, Accept",
		"modules.restaurant.enabled":  "true",
		"store.driver":                "memory",
	}}
	a.initLibraries()
	a.initHTTPServer()
	a.initModules()
	a.initClosers()
	return a
}

func TestHTTPServerAddsCORSHeaders(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/items/restaurants", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("body = %q, want empty array", got)
	}
}

func TestHTTPServerAddsCORSHeadersWithoutOrigin(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/items/restaurants", "/items/restaurants/missing", "/nope"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		a.httpServer.Handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: Access-Control-Allow-Origin = %q, want *", target, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Origin, X-Requested-With, Content-Type, Accept" {
			t.Fatalf("%s: Access-Control-Allow-Headers = %q", target, got)
		}
	}
}

func TestHTTPServerAnswersPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/items/restaurants/r1", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code >= http.StatusBadRequest {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatal("expected Access-Control-Allow-Headers on preflight")
	}
}

func TestClosersRegistered(t *testing.T) {
	a := newTestApp(t)

	for _, name := range []string{"HTTP Server", "Config"} {
		if _, ok := a.closerFn[name]; !ok {
			t.Fatalf("expected closer %q", name)
		}
	}
}
