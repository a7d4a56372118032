package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-service/internal/config"
	"github.com/janisto/hello-service/internal/http/v1/routes"
	applog "github.com/janisto/hello-service/internal/platform/logging"
	"github.com/janisto/hello-service/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
	"github.com/janisto/hello-service/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

// metricsNamespace prefixes every Prometheus series this process records.
const metricsNamespace = "hello"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Getenv, os.Stdout)
	stop()
	if err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	_ = applog.Sync()
}

// run loads configuration, builds the router and serves until ctx is done.
// Errors returned before the listener is bound are startup failures.
func run(ctx context.Context, getenv func(string) string, stdout io.Writer) error {
	// .env may set LOG_LEVEL, so it is loaded before the logger is first used.
	dotenvErr := config.LoadDotEnv()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}
	if dotenvErr != nil {
		applog.LogWarn(ctx, "ignoring .env file", zap.Error(dotenvErr))
	}
	cfg, err := config.Load(getenv)
	if err != nil {
		return err
	}

	recorder := metrics.New(metricsNamespace)
	if err := server.Run(ctx, cfg, newRouter(Version, recorder), stdout); err != nil {
		return err
	}

	served, err := recorder.RequestsServed()
	if err != nil {
		applog.LogWarn(ctx, "gather metrics", zap.Error(err))
	}
	applog.LogInfo(ctx, "server exited", zap.Float64("requestsServed", served))
	return nil
}

// newRouter assembles the middleware stack and the route table.
func newRouter(version string, recorder *metrics.Recorder) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.RequestID(),
		recorder.Middleware(),
		// Request bodies are never read; cap them anyway.
		chimiddleware.RequestSize(1<<10),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	routes.Register(routes.NewAPI(router, version))
	return router
}
