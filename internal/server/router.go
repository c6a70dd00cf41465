package server

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler returns the HTTP handler serving the document root
func (s *Server) Handler() http.Handler {
	return newRouter(s.cfg, s.logger)
}

func newRouter(cfg Config, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	if cfg.LocalOnly {
		r.Use(loopbackOnly(logger))
	}
	r.Use(accessLog(logger))
	r.PathPrefix("/").Handler(http.FileServerFS(cfg.RootFS))
	return r
}

// loopbackOnly rejects requests whose peer is not on this device
func loopbackOnly(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLoopback(r.RemoteAddr) {
				logger.Warn("rejected non-local request", "remote", r.RemoteAddr, "path", r.URL.Path)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog traces every request at debug level
func accessLog(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("request served", "method", r.Method, "path", r.URL.Path, "status", rec.status)
		})
	}
}
