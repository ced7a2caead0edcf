package api

import (
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/environment"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

// DefaultMaxBodySize caps request bodies at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

// Option configures the router.
type Option func(*handler)

// WithTranslator localizes validation messages per request.
func WithTranslator(tr *i18n.Translator) Option {
	return func(h *handler) { h.translator = tr }
}

// WithLogger sets the logger for requests and validation outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(h *handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithReadiness turns /health into a readiness probe running checks.
func WithReadiness(checks ...httpserver.Check) Option {
	return func(h *handler) { h.checks = append(h.checks, checks...) }
}

// WithEnvironment stores env in every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(h *handler) { h.env = env }
}

// WithMaxBodySize limits request bodies to n bytes. Non-positive values
// keep the default.
func WithMaxBodySize(n int64) Option {
	return func(h *handler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}
