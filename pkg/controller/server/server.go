package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	requestTimeout time.Duration
}

type Option func(*config)

// WithRequestTimeout bounds the whole handling of an API request including every upstream call
func WithRequestTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.requestTimeout = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		requestTimeout: 60 * time.Second,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(withTimeout(cfg.requestTimeout))
		r.Use(requireToken)

		r.Get("/repos", handleListRepositories(uc))
		r.Get("/workflows", handleListWorkflowRuns(uc))
		r.Get("/rate-limit", handleGetRateLimit(uc))
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handleGetDashboardStats(uc))
			r.Get("/repos", handleGetRepositoryStats(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
