package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-world/internal/api"
	"github.com/janisto/hello-world/internal/http/routes"
	applog "github.com/janisto/hello-world/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-world/internal/platform/middleware"
	"github.com/janisto/hello-world/internal/platform/respond"
)

const (
	maxRequestBodyBytes = 1 << 20 // 1 MB
	shutdownTimeout     = 10 * time.Second
)

func newRouter(version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(api.DocsPath),
		appmiddleware.Vary(),
		respond.NegotiateAccept(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For / X-Real-IP; deploy behind a proxy that sets them.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
		// HEAD is answered by the GET route when no HEAD route exists.
		chimiddleware.GetHead,
	)

	routes.Register(api.New(router, version))
	return router
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// run binds all interfaces on port and serves until ctx is cancelled.
func run(ctx context.Context, port int) error {
	addr := net.JoinHostPort("", strconv.Itoa(port))
	applog.LogDebug(ctx, "hello world service running on port", zap.Int("port", port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return serve(ctx, newHTTPServer(addr, newRouter(Version)), ln)
}

// serve runs srv on ln and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
		listenErr <- srv.Serve(ln)
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", ln.Addr(), err)
	case <-ctx.Done():
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(ctx, "server exited")
	return nil
}
