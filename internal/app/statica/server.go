package statica

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/statica/statica/pkg/log"
	"github.com/statica/statica/pkg/resource"
)

// server implements the HTTP server.
type server struct {
	config     *serverConfig
	logger     *slog.Logger
	store      resource.Store
	httpServer *http.Server
}

const (
	serverHeaderServer      string = "Server"
	serverHeaderRequestId   string = "X-Request-ID"
	serverHeaderEtag        string = "ETag"
	serverHeaderIfNoneMatch string = "If-None-Match"
	serverHeaderContentType string = "Content-Type"

	serverHeaderServerValue string = "statica"
)

// newServer creates a new server.
func newServer(config *serverConfig, store resource.Store, resources map[string]resourceConfig) *server {
	logger := slog.New(log.NewHandler(os.Stderr, "server", nil))

	mux := http.NewServeMux()
	for name, rc := range resources {
		mux.Handle(rc.Route, &resourceHandler{
			name:   name,
			store:  store,
			logger: logger,
		})
	}

	s := server{
		config: config,
		logger: logger,
		store:  store,
	}
	s.httpServer = &http.Server{
		Addr:         config.Listen,
		Handler:      s.middleware(mux),
		ReadTimeout:  time.Duration(*config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(*config.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return &s
}

// Start starts the server.
func (s *server) Start() error {
	listener, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return err
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "err", err)
		}
	}()

	return nil
}

// Stop stops the server gracefully.
func (s *server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// middleware implements the server middleware.
func (s *server) middleware(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				s.logger.Error("Error handler", "err", err, "stack", debug.Stack())
			}
		}()

		start := time.Now()
		wrapped := serverResponseWriter{w, false, http.StatusOK}

		w.Header().Set(serverHeaderServer, serverHeaderServerValue)
		w.Header().Set(serverHeaderRequestId, uuid.NewString())

		next.ServeHTTP(&wrapped, r)

		s.logger.Info("Request processed", "method", r.Method, "path", r.URL.EscapedPath(),
			"status", wrapped.status, "duration", time.Since(start))
	}

	return http.HandlerFunc(f)
}

// serverResponseWriter implements the logging response writer.
type serverResponseWriter struct {
	http.ResponseWriter
	wroteHeader bool
	status      int
}

// WriteHeader sends an HTTP response header with the provided status code.
func (w *serverResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
	w.wroteHeader = true
}

// resourceHandler implements the resource handler.
type resourceHandler struct {
	name   string
	store  resource.Store
	logger *slog.Logger
}

// ServeHTTP implements the http handler.
func (h *resourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry, err := h.store.Get(h.name)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			http.NotFound(w, r)
			return
		}

		h.logger.Error("Failed to get resource", "resource", h.name, "err", err)
		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	w.Header().Set(serverHeaderEtag, entry.Tag)

	if match := r.Header.Get(serverHeaderIfNoneMatch); match != "" && etagMatch(match, entry.Tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set(serverHeaderContentType, entry.MediaType)
	w.Write(entry.Data)
}

// etagMatch checks a conditional request header value against an entity tag.
func etagMatch(header string, tag string) bool {
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == tag {
			return true
		}
	}
	return false
}
