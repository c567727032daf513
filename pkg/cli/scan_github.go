package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octoleak/pkg/cli/config"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra"
	"github.com/m-mizutani/octoleak/pkg/usecase"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func scanGitHubCommand() *cli.Command {
	var (
		owner     string
		installID int64

		githubApp config.GitHubApp
		scan      config.Scan
		git       config.Git
		bigQuery  config.BigQuery
		firestore config.Firestore
		sentry    config.Sentry
	)

	ownerFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "GitHub owner (user or organization) whose repositories are scanned",
			Sources:     cli.EnvVars("OCTOLEAK_GITHUB_OWNER"),
			Destination: &owner,
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "install-id",
			Usage:       "GitHub App installation ID (looked up by owner if not specified)",
			Sources:     cli.EnvVars("OCTOLEAK_GITHUB_INSTALL_ID"),
			Destination: &installID,
		},
	}

	return &cli.Command{
		Name:    "scan-github",
		Aliases: []string{"sg"},
		Usage:   "Scan history of all repositories of a GitHub owner via GitHub App",
		Flags: slice.Flatten(
			ownerFlags,
			githubApp.Flags(),
			scan.Flags(),
			git.Flags(),
			bigQuery.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting GitHub owner scan",
				slog.String("owner", owner),
				slog.Int64("install_id", installID),
				slog.Any("GitHubApp", &githubApp),
				slog.Any("Scan", &scan),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Firestore", &firestore),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(ctx)

			ucOptions, err := scan.UseCaseOptions()
			if err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
				infra.WithGit(git.NewClient()),
			}
			storages, err := storageOptions(ctx, &bigQuery, &firestore)
			if err != nil {
				return err
			}
			if len(storages) == 0 {
				logging.Default().Warn("no storage is configured, findings are only logged")
			}
			infraOptions = append(infraOptions, storages...)

			uc := usecase.New(infra.New(infraOptions...), ucOptions...)
			return uc.ScanGitHubOwner(ctx, &model.ScanGitHubOwnerInput{
				Owner:     owner,
				InstallID: types.GitHubAppInstallID(installID),
			})
		},
	}
}
