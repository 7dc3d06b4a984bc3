package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/luciantraders/meesho-lister/internal/config"
	"github.com/luciantraders/meesho-lister/internal/http/apierr"
	"github.com/luciantraders/meesho-lister/internal/http/metric"
	"github.com/luciantraders/meesho-lister/internal/http/middleware"
	"github.com/luciantraders/meesho-lister/internal/http/swagger"
	"github.com/luciantraders/meesho-lister/internal/service"
	"github.com/luciantraders/meesho-lister/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg       config.HTTP
	logger    *slog.Logger
	metrics   *metric.Metrics
	validator validator.Validator

	draftSvc  service.DraftService
	exportSvc service.ExportService
	trendSvc  service.TrendService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	draftSvc service.DraftService,
	exportSvc service.ExportService,
	trendSvc service.TrendService,
) *Service {
	return &Service{
		cfg:       cfg,
		logger:    log.With(slog.String("service", "http")),
		metrics:   metric.New(),
		validator: validator.NewDefaultValidator(),
		draftSvc:  draftSvc,
		exportSvc: exportSvc,
		trendSvc:  trendSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	draftHandler := newDraftHandler(s, s.draftSvc)
	exportHandler := newExportHandler(s, s.exportSvc)
	trendHandler := newTrendHandler(s, s.trendSvc)

	r.Route("/api/v1/drafts", func(r chi.Router) {
		r.Post("/", draftHandler.createDraft)

		r.Route("/{draftId}", func(r chi.Router) {
			r.Get("/", draftHandler.getDraft)
			r.Put("/", draftHandler.updateProduct)
			r.Post("/variants", draftHandler.addVariant)
			r.Delete("/variants/{index}", draftHandler.removeVariant)
			r.Post("/images", draftHandler.stageImage)
			r.Delete("/images", draftHandler.clearImages)
			r.Post("/export", exportHandler.exportDraft)
		})
	})

	r.Route("/api/v1/trends", func(r chi.Router) {
		r.Get("/", trendHandler.listTrending)
		r.Get("/platforms", trendHandler.listPlatforms)
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
