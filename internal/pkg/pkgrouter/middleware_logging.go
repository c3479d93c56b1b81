package pkgrouter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

// responseMeter records what the handler wrote without buffering it.
type responseMeter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (m *responseMeter) WriteHeader(code int) {
	if m.status == 0 {
		m.status = code
	}
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeter) Write(p []byte) (int, error) {
	if m.status == 0 {
		m.status = http.StatusOK
	}
	n, err := m.ResponseWriter.Write(p)
	m.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the server's writer.
func (m *responseMeter) Unwrap() http.ResponseWriter {
	return m.ResponseWriter
}

// routePattern returns the registered path, e.g. /items/restaurants/:restaurantId,
// so log lines group by endpoint instead of by ID.
func routePattern(r *http.Request) string {
	if p := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); p != "" {
		return p
	}
	return r.URL.Path
}

// middlewareLogging writes one line per request. Server errors are logged at
// warn so they stand out next to the usecase's own error line.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		meter := &responseMeter{ResponseWriter: w}

		next.ServeHTTP(meter, r)

		status := meter.status
		if status == 0 {
			status = http.StatusOK
		}

		lvl := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			lvl = slog.LevelWarn
		}

		slog.Log(r.Context(), lvl, "request served",
			slog.String("method", r.Method),
			slog.String("route", routePattern(r)),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", meter.bytes),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
	})
}
