package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// ScanGitHubRepo scans the history of a GitHub repository with a GitHub App installation
// token as clone credential. The app should be installed to the repository and have read
// access to its contents. The report summary is stored to the configured storages.
func (x *UseCase) ScanGitHubRepo(ctx context.Context, input *model.ScanGitHubRepoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if x.clients.GitHubApp() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub App is not configured")
	}

	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.RepoName),
		slog.String("branch", input.Branch),
		slog.String("commit", input.CommitID),
	))

	token, err := x.clients.GitHubApp().InstallationToken(ctx, input.InstallID)
	if err != nil {
		return goerr.Wrap(err, "failed to get installation token", goerr.V("install_id", input.InstallID))
	}

	report, err := x.ScanRepository(ctx, input.CloneURL, token)
	if err != nil {
		return err
	}
	logging.From(ctx).Info("scan finished", slog.Int("findings", report.FindingCount()))

	if err := x.SaveReport(ctx, report); err != nil {
		return err
	}

	return nil
}
