package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octoleak/pkg/cli/config"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra"
	"github.com/m-mizutani/octoleak/pkg/presenter"
	"github.com/m-mizutani/octoleak/pkg/usecase"
	"github.com/m-mizutani/octoleak/pkg/utils/errutil"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func scanCommand(w io.Writer) *cli.Command {
	var (
		scan      config.Scan
		git       config.Git
		bigQuery  config.BigQuery
		firestore config.Firestore
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"sc"},
		Usage:     "Scan git history of repositories and local files for secrets",
		ArgsUsage: "<repository URL | local path> ...",
		Flags: slice.Flatten(
			scan.Flags(),
			git.Flags(),
			bigQuery.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting scan",
				slog.Any("Scan", &scan),
				slog.Any("Git", &git),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Firestore", &firestore),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(ctx)

			return runScan(ctx, w, c.Args().Slice(), &scan, &git, &bigQuery, &firestore)
		},
	}
}

func runScan(ctx context.Context, w io.Writer, inputs []string, scan *config.Scan, git *config.Git, bigQuery *config.BigQuery, firestore *config.Firestore) error {
	if len(inputs) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "at least one repository URL or path is required")
	}

	writer, err := presenter.New(scan.Format())
	if err != nil {
		return err
	}

	ucOptions, err := scan.UseCaseOptions()
	if err != nil {
		return err
	}

	infraOptions := []infra.Option{
		infra.WithGit(git.NewClient()),
	}
	storages, err := storageOptions(ctx, bigQuery, firestore)
	if err != nil {
		return err
	}
	infraOptions = append(infraOptions, storages...)

	uc := usecase.New(infra.New(infraOptions...), ucOptions...)
	results := uc.ScanTargets(ctx, inputs)

	if err := writer.Write(w, results); err != nil {
		return err
	}

	var failed []string
	for _, result := range results {
		if result.Err != nil {
			errutil.HandleError(ctx, "failed to scan target", result.Err)
			failed = append(failed, result.Input)
		}
	}
	if len(failed) > 0 {
		return goerr.New("some targets failed to scan",
			goerr.V("failed", failed),
			goerr.V("total", len(inputs)),
		)
	}

	return nil
}
