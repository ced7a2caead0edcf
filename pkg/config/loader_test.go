package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type engineDefaults struct {
	Schema   string `env:"TEST_DEFAULTS_SCHEMA" envDefault:"rules.yaml"`
	Workers  int    `env:"TEST_DEFAULTS_WORKERS" envDefault:"4"`
	FailFast bool   `env:"TEST_DEFAULTS_FAIL_FAST" envDefault:"true"`
}

type engineConfig struct {
	Schema   string `env:"TEST_ENGINE_SCHEMA" envDefault:"rules.yaml"`
	Workers  int    `env:"TEST_ENGINE_WORKERS" envDefault:"4"`
	FailFast bool   `env:"TEST_ENGINE_FAIL_FAST" envDefault:"true"`
}

type cachedConfig struct {
	Lang string `env:"TEST_CACHED_LANG" envDefault:"en"`
}

type schemaConfig struct {
	Path string `env:"TEST_SCHEMA_PATH" envDefault:"schema.yaml"`
}

type messagesConfig struct {
	Path string `env:"TEST_MESSAGES_PATH" envDefault:"messages.yaml"`
}

type mandatoryConfig struct {
	Path string `env:"TEST_MANDATORY_PATH,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("TEST_ENGINE_SCHEMA", "/etc/rulekit/rules.yaml")
		t.Setenv("TEST_ENGINE_WORKERS", "16")
		t.Setenv("TEST_ENGINE_FAIL_FAST", "false")

		var cfg engineConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "/etc/rulekit/rules.yaml", cfg.Schema)
		assert.Equal(t, 16, cfg.Workers)
		assert.False(t, cfg.FailFast)
	})

	t.Run("applies defaults", func(t *testing.T) {
		os.Unsetenv("TEST_DEFAULTS_SCHEMA")
		os.Unsetenv("TEST_DEFAULTS_WORKERS")
		os.Unsetenv("TEST_DEFAULTS_FAIL_FAST")

		var cfg engineDefaults
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "rules.yaml", cfg.Schema)
		assert.Equal(t, 4, cfg.Workers)
		assert.True(t, cfg.FailFast)
	})

	t.Run("missing required variable", func(t *testing.T) {
		os.Unsetenv("TEST_MANDATORY_PATH")

		var cfg mandatoryConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *engineConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Run("second load returns cached value", func(t *testing.T) {
		t.Setenv("TEST_CACHED_LANG", "fr")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_LANG", "de")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "fr", second.Lang)
	})

	t.Run("reset drops cached values", func(t *testing.T) {
		t.Setenv("TEST_CACHED_LANG", "es")
		config.ResetCache()

		var cfg cachedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "es", cfg.Lang)
	})

	t.Run("types are cached separately", func(t *testing.T) {
		t.Setenv("TEST_SCHEMA_PATH", "a.yaml")
		t.Setenv("TEST_MESSAGES_PATH", "b.yaml")

		var s schemaConfig
		var m messagesConfig
		require.NoError(t, config.Load(&s))
		require.NoError(t, config.Load(&m))

		assert.Equal(t, "a.yaml", s.Path)
		assert.Equal(t, "b.yaml", m.Path)
	})
}
