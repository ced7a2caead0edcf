// Package config loads configuration structs from environment variables.
//
// Values are parsed with github.com/caarlos0/env/v11 using `env` and
// `envDefault` field tags. A .env file in the working directory is read
// with github.com/joho/godotenv before the first parse; LoadEnv reads other
// files instead. Variables already present in the environment win over
// values from files.
//
// Each configuration type is parsed once and cached for the lifetime of the
// process, so packages can call Load for the same type without re-reading
// the environment:
//
//	var cfg cli.Config
//	config.MustLoad(&cfg)
//
// ResetCache clears the cache between tests.
package config
