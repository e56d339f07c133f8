package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"passmeter/pkg/contextx"
	"passmeter/pkg/logx"
)

const defaultReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// HTTPServer runs an http.Server inside the errgroup and shuts it down
// gracefully once ctx is done.
type HTTPServer struct {
	Name            string
	ShutdownTimeout time.Duration
}

// NewServer builds an http.Server whose request contexts derive from ctx,
// so handlers inherit its logger.
func NewServer(ctx context.Context, address string, handler http.Handler, readHeaderTimeout time.Duration) *http.Server {
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = defaultReadHeaderTimeout
	}

	return &http.Server{
		//nolint:exhaustruct
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	log := logger(ctx).With(slog.String("server", h.Name), slog.String("address", httpServer.Addr))

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("server.Shutdown", logx.Error(err))
			}
		}()

		log.Info("http server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		log.Info("http server stopped")

		return nil
	})
}
