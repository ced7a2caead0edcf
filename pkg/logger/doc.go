// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// context (request ids, the environment) on every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "rulekit"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
//	log.Debug("validated instance",
//		logger.Type("app.User"),
//		logger.Count("errors", 2),
//	)
//
// Command line tools map flags with ParseFormat and LevelFromVerbosity.
//
// Error and Errors return an empty attribute for nil errors, so
// log.Info("done", logger.Error(err)) needs no nil check.
package logger
