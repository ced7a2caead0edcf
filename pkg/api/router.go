package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rulekit/pkg/environment"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type handler struct {
	validator   *validator.Validator
	validate    validator.Func
	translator  *i18n.Translator
	logger      *slog.Logger
	checks      []httpserver.Check
	env         environment.Environment
	maxBodySize int64
}

// NewRouter returns a router serving v.
func NewRouter(v *validator.Validator, opts ...Option) chi.Router {
	h := &handler{
		validator:   v,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("api"))
	h.validate = validator.Decorate(v.Func(),
		validator.Logging(h.logger),
		validator.Timing(h.logger, nil),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if h.env != "" {
		r.Use(environment.Middleware(h.env))
	}
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	if h.translator != nil {
		r.Use(i18n.Middleware(i18n.LangExtractorFor(h.translator), h.translator.DefaultLanguage()))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", httpserver.HealthCheckHandler(h.logger, h.checks...))
	r.Get("/rules/{type}", h.getRules)
	r.Post("/validate/{type}", h.postValidate)
	return r
}

// RequestIDExtractor adds the chi request ID to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := middleware.GetReqID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Elapsed(start),
		)
	})
}
