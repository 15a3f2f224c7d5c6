package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octodash/pkg/cli/config"
	"github.com/m-mizutani/octodash/pkg/controller/server"
	"github.com/m-mizutani/octodash/pkg/infra"
	"github.com/m-mizutani/octodash/pkg/usecase"
	"github.com/m-mizutani/octodash/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr           string
		requestTimeout time.Duration

		github config.GitHub
		engine config.Engine
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTODASH_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Timeout of each API request",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("OCTODASH_REQUEST_TIMEOUT"),
			Destination: &requestTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode. The GitHub token is taken from the Authorization header of each request",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			engine.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Engine", engine),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			client, err := github.NewClient()
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHub(client))
			uc := usecase.New(clients, engine.Options()...)
			s := server.New(uc, server.WithRequestTimeout(requestTimeout))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      requestTimeout + 10*time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
