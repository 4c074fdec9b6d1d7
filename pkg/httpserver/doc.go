// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling, environment-driven configuration, and health check handlers.
//
// The server shuts down cleanly on context cancellation or SIGINT/SIGTERM,
// running registered stop hooks (such as closing the database client) before
// Run returns.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
