package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/netutil"

	"github.com/ytget/web-shell/internal/config"
)

var (
	// ErrAlreadyStarted is returned by Start on a server that was started before
	ErrAlreadyStarted = errors.New("server already started")

	// ErrStopped is returned by Start on a server that was stopped
	ErrStopped = errors.New("server stopped")

	// ErrNoDocumentRoot is returned by Start when no document root is configured
	ErrNoDocumentRoot = errors.New("no document root configured")
)

// Server timing constants
const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Config describes the server to run
type Config struct {
	// Port to bind. Zero picks a free port.
	Port int
	// RootPath identifies the document root in logs and in the Handle
	RootPath string
	// RootFS is the tree served at "/"
	RootFS fs.FS
	// LocalOnly binds to the loopback interface and rejects remote peers
	LocalOnly bool
	// MaxConnections caps concurrent connections; zero means no cap
	MaxConnections int
}

// Handle describes a running server
type Handle struct {
	ID           string
	Port         int
	DocumentRoot string
	BaseURL      string
}

// Server is a static file server bound to a fixed port and document root
type Server struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	handle  *Handle
	httpSrv *http.Server
	done    chan struct{}
	stopped bool
}

// New creates a server that is not yet listening
func New(cfg Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Start binds the listener and begins serving. It returns the base URL once
// the server is accepting connections.
func (s *Server) Start(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return "", ErrStopped
	}
	if s.httpSrv != nil {
		return "", ErrAlreadyStarted
	}
	if s.cfg.RootFS == nil {
		return "", ErrNoDocumentRoot
	}

	addr := net.JoinHostPort(s.bindHost(), strconv.Itoa(s.cfg.Port))
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	port := ln.Addr().(*net.TCPAddr).Port
	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	handle := &Handle{
		ID:           uuid.NewString(),
		Port:         port,
		DocumentRoot: s.cfg.RootPath,
		BaseURL:      BaseURL(port),
	}
	httpSrv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("static server stopped unexpectedly", "server_id", handle.ID, "error", err)
		}
	}()

	s.handle = handle
	s.httpSrv = httpSrv
	s.done = done

	s.logger.Info("static server listening",
		"server_id", handle.ID,
		"url", handle.BaseURL,
		"document_root", handle.DocumentRoot,
		"local_only", s.cfg.LocalOnly,
	)
	return handle.BaseURL, nil
}

// Stop shuts the server down and waits for the serve loop to exit. Calling
// Stop on a server that never started, or more than once, does nothing.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	if s.httpSrv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown failed, closing", "server_id", s.handle.ID, "error", err)
		_ = s.httpSrv.Close()
	}
	<-s.done

	s.logger.Info("static server stopped", "server_id", s.handle.ID)
}

// Handle returns the running server's handle, if it was started
func (s *Server) Handle() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return Handle{}, false
	}
	return *s.handle, true
}

func (s *Server) bindHost() string {
	if s.cfg.LocalOnly {
		return config.LoopbackHost
	}
	return ""
}

// BaseURL formats the reachable root URL for a server on port
func BaseURL(port int) string {
	return "http://" + net.JoinHostPort(config.LoopbackHost, strconv.Itoa(port))
}
