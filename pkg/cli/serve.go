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
	"github.com/m-mizutani/octoleak/pkg/cli/config"
	"github.com/m-mizutani/octoleak/pkg/controller/server"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra"
	"github.com/m-mizutani/octoleak/pkg/usecase"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		scan      config.Scan
		git       config.Git
		bigQuery  config.BigQuery
		firestore config.Firestore
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOLEAK_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			scan.Flags(),
			git.Flags(),
			bigQuery.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", &githubApp),
				slog.Any("Scan", &scan),
				slog.Any("Git", &git),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Firestore", &firestore),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ucOptions, err := scan.UseCaseOptions()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGit(git.NewClient()),
			}
			if githubApp.Secret() != "" && !githubApp.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "GitHub App is required to serve the webhook")
			}
			if githubApp.Enabled() {
				ghApp, err := githubApp.New()
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGitHubApp(ghApp))
			}
			storages, err := storageOptions(ctx, &bigQuery, &firestore)
			if err != nil {
				return err
			}
			infraOptions = append(infraOptions, storages...)

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, ucOptions...)
			s := server.New(uc, server.WithGitHubSecret(githubApp.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,

				// A synchronous scan of /api/scan clones and walks whole histories
				WriteTimeout: 15 * time.Minute,
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
