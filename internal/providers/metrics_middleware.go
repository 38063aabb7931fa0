package providers

import (
	"net/http"
	"strings"
	"time"
)

const apiPrefix = "/api/"

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

const (
	unknownEndpoint = "unknown"
	staticEndpoint  = "static"
)

// endpointLabel reports registered routes as-is. Other API paths share
// "unknown" and the rest share "static".
func endpointLabel(known map[string]struct{}, path string) string {
	if _, ok := known[path]; ok {
		return path
	}
	if strings.HasPrefix(path, apiPrefix) {
		return unknownEndpoint
	}
	return staticEndpoint
}

// MetricsMiddleware labels requests by the route URLs in endpoints.
func MetricsMiddleware(metrics MetricsProviderInterface, endpoints []string, next http.Handler) http.Handler {
	known := make(map[string]struct{}, len(endpoints))
	for _, e := range endpoints {
		known[e] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		endpoint := endpointLabel(known, r.URL.Path)
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, duration)
	})
}

func LoggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logType := GetLogTypeByRequestType(r.Method)
		if sw.status >= http.StatusInternalServerError {
			logger.Errorf(logType, "%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
			return
		}
		logger.Debugf(logType, "%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
