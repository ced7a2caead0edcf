package validator_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestDecorate(t *testing.T) {
	t.Run("first decorator is outermost", func(t *testing.T) {
		var calls []string
		trace := func(name string) validator.Decorator {
			return func(next validator.Func) validator.Func {
				return func(ctx context.Context, instance any) validator.Result {
					calls = append(calls, name+" before")
					res := next(ctx, instance)
					calls = append(calls, name+" after")
					return res
				}
			}
		}

		v := validator.New(validator.WithRegistry(profileRegistry()))
		fn := validator.Decorate(v.Func(), trace("outer"), nil, trace("inner"))

		res := fn(context.Background(), Profile{Name: "Alice"})
		assert.True(t, res.Valid)
		assert.Equal(t, []string{"outer before", "inner before", "inner after", "outer after"}, calls)
	})

	t.Run("without decorators", func(t *testing.T) {
		v := validator.New(validator.WithRegistry(profileRegistry()))
		fn := validator.Decorate(v.Func())
		assert.False(t, fn(context.Background(), Profile{}).Valid)
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := validator.New(validator.WithRegistry(profileRegistry()))
	fn := validator.Decorate(v.Func(), validator.Logging(log))

	t.Run("failure", func(t *testing.T) {
		buf.Reset()
		res := fn(context.Background(), Profile{})
		assert.False(t, res.Valid)

		out := buf.String()
		assert.Contains(t, out, `"level":"INFO"`)
		assert.Contains(t, out, `"msg":"validation failed"`)
		assert.Contains(t, out, `"errors":2`)
		assert.Contains(t, out, `"properties":["name"]`)
	})

	t.Run("success", func(t *testing.T) {
		buf.Reset()
		res := fn(context.Background(), Profile{Name: "Alice"})
		assert.True(t, res.Valid)

		out := buf.String()
		assert.Contains(t, out, `"level":"DEBUG"`)
		assert.Contains(t, out, `"msg":"validation passed"`)
	})
}

func TestTiming(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var observed []time.Duration
	v := validator.New(validator.WithRegistry(profileRegistry()))
	fn := validator.Decorate(v.Func(),
		validator.Timing(log, func(d time.Duration) { observed = append(observed, d) }),
	)

	res := fn(context.Background(), Profile{Name: "Al"})
	assert.True(t, res.Valid)

	require.Len(t, observed, 1)
	assert.GreaterOrEqual(t, observed[0], time.Duration(0))
	assert.Contains(t, buf.String(), "validation timing")

	t.Run("nil observer", func(t *testing.T) {
		fn := validator.Decorate(v.Func(), validator.Timing(log, nil))
		assert.NotPanics(t, func() { fn(context.Background(), Profile{}) })
	})
}
