package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Func validates one instance.
type Func func(ctx context.Context, instance any) Result

// Decorator wraps a Func with extra behavior.
type Decorator func(Func) Func

// Func returns the validator's Validate as a Func, ready for decoration.
func (v *Validator) Func() Func {
	return func(_ context.Context, instance any) Result {
		return v.Validate(instance)
	}
}

// Decorate wraps fn with decorators. The first decorator is the outermost.
func Decorate(fn Func, decorators ...Decorator) Func {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] != nil {
			fn = decorators[i](fn)
		}
	}
	return fn
}

// Logging logs every call: failures at info level with the failing
// properties, successes at debug level.
func Logging(log *slog.Logger) Decorator {
	return func(next Func) Func {
		return func(ctx context.Context, instance any) Result {
			res := next(ctx, instance)
			if res.Valid {
				log.DebugContext(ctx, "validation passed", logger.Type(TypeNameOf(instance)))
				return res
			}
			log.InfoContext(ctx, "validation failed",
				logger.Type(TypeNameOf(instance)),
				logger.Count("errors", len(res.Errors)),
				slog.Any("properties", res.Errors.Fields()),
			)
			return res
		}
	}
}

// Timing logs how long each call took at debug level. A non-nil observe
// also receives the duration.
func Timing(log *slog.Logger, observe func(time.Duration)) Decorator {
	return func(next Func) Func {
		return func(ctx context.Context, instance any) Result {
			start := time.Now()
			res := next(ctx, instance)
			d := time.Since(start)

			log.DebugContext(ctx, "validation timing",
				logger.Type(TypeNameOf(instance)),
				logger.Duration(d),
			)
			if observe != nil {
				observe(d)
			}
			return res
		}
	}
}
