// Package debugserver exposes a small chi-backed HTTP surface for manual
// inspection of decoded golden fixtures and Prometheus metrics, layered
// as a standard router plus middleware chain (request ID, real IP,
// structured logging, recovery, timeout) ahead of the route handlers.
// The wire-format packages (pkg/wire, pkg/stream, pkg/record,
// pkg/message) have no identity concept; this is the only place in the
// repository that performs authentication.
package debugserver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marmos91/sdp/internal/logger"
	"github.com/marmos91/sdp/internal/metrics"
	"github.com/marmos91/sdp/pkg/record"
)

// RecordFactory produces a fresh, zero-value decoder for a registered
// record name, mirroring pkg/message.DecoderFactory's role in the
// dispatcher.
type RecordFactory func() record.Decoder

// Config configures the debug server.
type Config struct {
	ListenAddress string
	JWTSigningKey string
	TestdataDir   string
}

// Server serves fixture inspection and metrics endpoints.
type Server struct {
	cfg       Config
	registry  map[string]RecordFactory
	auditFunc func(ctx context.Context, recordName string, bytesConsumed int, ok bool)
}

// New builds a Server. registry maps a record name (as used by sdpcli and
// the canonical fixture registry) to a decoder factory.
func New(cfg Config, registry map[string]RecordFactory) *Server {
	if cfg.TestdataDir == "" {
		cfg.TestdataDir = "testdata"
	}
	return &Server{cfg: cfg, registry: registry}
}

// OnUpload registers a callback invoked after every authenticated upload
// decode attempt, so callers (e.g. internal/dispatchaudit) can record the
// outcome without this package depending on a storage backend.
func (s *Server) OnUpload(fn func(ctx context.Context, recordName string, bytesConsumed int, ok bool)) {
	s.auditFunc = fn
}

// Router builds the chi handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/fixtures", func(r chi.Router) {
		r.Get("/{record}/{id}", s.getFixture)

		r.Group(func(r chi.Router) {
			r.Use(s.requireBearerToken)
			r.Post("/{record}", s.postFixture)
		})
	})

	return r
}

// ListenAndServe starts the HTTP server and blocks until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddress,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("debug server listening", "address", s.cfg.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("debugserver request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) fixturePath(recordName string) string {
	return filepath.Join(s.cfg.TestdataDir, recordName+".sdpb")
}

func (s *Server) readFixture(recordName string) ([]byte, error) {
	return os.ReadFile(s.fixturePath(recordName))
}
