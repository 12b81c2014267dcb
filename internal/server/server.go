package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"capbrowse/internal/api"
	"capbrowse/internal/browse"
	"capbrowse/internal/catalog"
	"capbrowse/internal/config"
	"capbrowse/internal/logging"
)

// Server renders the catalog over HTTP.
type Server struct {
	bind    string
	logger  *slog.Logger
	browse  config.Browse
	catalog *catalog.Catalog
	records *api.RecordService
	metrics *metrics
	handler http.Handler

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

// New builds a server over cat. A nil catalog serves an empty collection.
func New(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server: server.bind is empty")
	}
	if cat == nil {
		cat = catalog.New("", nil, nil)
	}

	srv := &Server{
		bind:    bind,
		logger:  logging.NewComponentLogger(logger, "server"),
		browse:  cfg.Browse,
		catalog: cat,
		records: api.NewRecordService(cat),
		metrics: newMetrics(),
	}
	srv.metrics.recordsLoaded.Set(float64(cat.Len()))

	mux := http.NewServeMux()
	mux.Handle("/", srv.instrument("/", http.HandlerFunc(srv.handleIndex)))
	mux.Handle("/api/records", srv.instrument("/api/records", http.HandlerFunc(srv.handleRecords)))
	mux.Handle("/api/records/", srv.instrument("/api/records/{id}", http.HandlerFunc(srv.handleRecord)))
	mux.Handle("/metrics", srv.instrument("/metrics", srv.getOnly(
		promhttp.HandlerFor(srv.metrics.registry, promhttp.HandlerOpts{}),
	)))
	if dir := strings.TrimSpace(cfg.Server.AudioDir); dir != "" {
		files := http.StripPrefix("/audio/", http.FileServer(http.Dir(dir)))
		mux.Handle("/audio/", srv.instrument("/audio", srv.getOnly(files)))
	}
	srv.handler = mux
	return srv, nil
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is done or
// Stop is called.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("server listen: %w", err)
	}
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.mu.Lock()
	s.listener = listener
	s.server = httpServer
	s.mu.Unlock()

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("page server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("page server listening",
		logging.String("address", listener.Addr().String()),
		logging.Int("records", s.catalog.Len()),
	)
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	httpServer := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}
}

// baseState is the state a request starts from before its query values.
func (s *Server) baseState() browse.State {
	field, _ := browse.ParseField(s.browse.DefaultField)
	return browse.NewState(s.browse.PageSize).WithField(field)
}

func (s *Server) view(state browse.State) browse.View {
	started := time.Now()
	view := s.records.View(state)
	s.metrics.filterDuration.WithLabelValues(string(view.State.Field)).Observe(time.Since(started).Seconds())
	return view
}
