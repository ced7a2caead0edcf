// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run blocks until its context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown bounded by the
// configured shutdown timeout. Timeouts and the listen address come from
// functional options or from Config, which is read from the environment
// with pkg/config:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
// Start and stop failures are wrapped with ErrStart and ErrShutdown.
package httpserver
