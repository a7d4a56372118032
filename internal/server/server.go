// Package server owns the TCP listener and the HTTP accept loop.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/hello-service/internal/config"
	applog "github.com/janisto/hello-service/internal/platform/logging"
)

// ErrBindFailed reports that the listening socket could not be acquired.
var ErrBindFailed = errors.New("bind failed")

// ShutdownTimeout bounds how long in-flight requests may run after the serve
// context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Bind acquires a TCP listener on the loopback address from cfg.
func Bind(cfg config.BindConfig) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBindFailed, cfg.Addr(), err)
	}
	return ln, nil
}

// Announce writes the single startup line naming the bound address.
func Announce(w io.Writer, addr net.Addr) error {
	_, err := fmt.Fprintf(w, "listening on %s\n", addr)
	return err
}

// New returns an http.Server for handler. Connection-level errors reported by
// net/http (malformed requests, TLS probes, write failures) go to the zap
// logger at warning level.
func New(handler http.Handler) *http.Server {
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
	if errLog, err := zap.NewStdLogAt(applog.Logger().Named("http"), zapcore.WarnLevel); err == nil {
		srv.ErrorLog = errLog
	}
	return srv
}

// Serve accepts connections on ln until ctx is cancelled, then shuts srv down
// within ShutdownTimeout. It returns nil after a shutdown triggered by ctx.
func Serve(ctx context.Context, ln net.Listener, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run binds cfg, announces the bound address on stdout and serves handler
// until ctx is cancelled. Nothing is written to stdout when binding fails.
func Run(ctx context.Context, cfg config.BindConfig, handler http.Handler, stdout io.Writer) error {
	ln, err := Bind(cfg)
	if err != nil {
		return err
	}
	if err := Announce(stdout, ln.Addr()); err != nil {
		_ = ln.Close()
		return fmt.Errorf("announce: %w", err)
	}
	applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
	return Serve(ctx, ln, New(handler))
}
