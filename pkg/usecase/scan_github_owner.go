package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// scanFailure represents a failed repository scan with its error details.
type scanFailure struct {
	Owner string
	Repo  string
	Error string
}

// ScanGitHubOwner scans the history of every repository of the owner that the GitHub App
// installation can access. Archived and disabled repositories are skipped.
func (x *UseCase) ScanGitHubOwner(ctx context.Context, input *model.ScanGitHubOwnerInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	logger := logging.From(ctx)

	// Validate GitHub App is configured
	if x.clients.GitHubApp() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub App is required to scan an owner")
	}

	// Get installation ID if not provided
	installID := input.InstallID
	if installID == 0 {
		id, err := x.clients.GitHubApp().GetInstallationIDForOwner(ctx, input.Owner)
		if err != nil {
			return goerr.Wrap(err, "failed to get installation ID for owner",
				goerr.V("owner", input.Owner),
			)
		}
		installID = id
	}

	repos, err := x.clients.GitHubApp().ListInstallationRepos(ctx, installID)
	if err != nil {
		return goerr.Wrap(err, "failed to list installation repos",
			goerr.V("owner", input.Owner),
			goerr.V("installID", installID),
		)
	}

	var validRepos []*model.GitHubAPIRepository
	for _, repo := range repos {
		switch {
		case repo.Owner != input.Owner:
			logger.Debug("Skipping repository due to different owner",
				slog.String("repo_owner", repo.Owner),
				slog.String("repo_name", repo.Name),
			)
		case repo.Archived, repo.Disabled:
			logger.Debug("Skipping archived or disabled repository",
				slog.String("owner", repo.Owner),
				slog.String("repo", repo.Name),
			)
		case repo.CloneURL == "":
			logger.Debug("Skipping repository without clone URL",
				slog.String("owner", repo.Owner),
				slog.String("repo", repo.Name),
			)
		default:
			validRepos = append(validRepos, repo)
		}
	}

	logger.Info("Filtered repositories for scanning",
		slog.String("owner", input.Owner),
		slog.Int("valid_repos", len(validRepos)),
		slog.Int("skipped_repos", len(repos)-len(validRepos)),
	)

	if len(validRepos) == 0 {
		logger.Warn("No repositories to scan",
			slog.String("owner", input.Owner),
		)
		return nil
	}

	var successCount int
	var failures []scanFailure

	for i, repo := range validRepos {
		logger.Info("Scanning repository",
			slog.Int("progress", i+1),
			slog.Int("total", len(validRepos)),
			slog.String("owner", repo.Owner),
			slog.String("repo", repo.Name),
		)

		if err := x.ScanGitHubRepo(ctx, &model.ScanGitHubRepoInput{
			Owner:     repo.Owner,
			RepoName:  repo.Name,
			CloneURL:  repo.CloneURL,
			Branch:    repo.DefaultBranch,
			InstallID: installID,
		}); err != nil {
			failures = append(failures, scanFailure{
				Owner: repo.Owner,
				Repo:  repo.Name,
				Error: err.Error(),
			})
			logger.Warn("Failed to scan repository",
				slog.String("owner", repo.Owner),
				slog.String("repo", repo.Name),
				slog.String("error", err.Error()),
			)
			continue
		}

		successCount++
	}

	logger.Info("Completed owner scan",
		slog.String("owner", input.Owner),
		slog.Int("total_repos", len(validRepos)),
		slog.Int("success", successCount),
		slog.Int("failure", len(failures)),
	)

	if len(failures) > 0 {
		failedRepos := make([]string, len(failures))
		for i, f := range failures {
			failedRepos[i] = f.Owner + "/" + f.Repo
		}

		return goerr.New("some repositories failed to scan",
			goerr.V("owner", input.Owner),
			goerr.V("success_count", successCount),
			goerr.V("failure_count", len(failures)),
			goerr.V("failed_repos", failedRepos),
		)
	}

	return nil
}
