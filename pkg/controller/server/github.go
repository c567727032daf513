package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/errutil"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// handleGitHubAppEventResult represents the result of validating and parsing a GitHub App event.
// If ScanInput is nil, no scan is required (either no scan needed or validation failed).
type handleGitHubAppEventResult struct {
	ScanInput *model.ScanGitHubRepoInput
}

// validateGitHubAppEvent validates and parses a GitHub App webhook event.
// It returns the scan input if a scan is required, or nil if no scan is needed.
// This function is synchronous and should be called before starting background processing.
func validateGitHubAppEvent(r *http.Request, key types.GitHubAppSecret) (*handleGitHubAppEventResult, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub App event",
		slog.String("type", github.WebHookType(r)),
		slog.String("delivery", github.DeliveryID(r)),
	)

	scanInput := githubEventToScanInput(event)
	return &handleGitHubAppEventResult{ScanInput: scanInput}, nil
}

// runGitHubRepoScan executes the GitHub repository scan in the provided context.
// This function is designed to be called from a background goroutine.
func runGitHubRepoScan(ctx context.Context, uc interfaces.UseCase, scanInput *model.ScanGitHubRepoInput) {
	logger := logging.From(ctx).With(
		slog.String("owner", scanInput.Owner),
		slog.String("repo", scanInput.RepoName),
		slog.String("commit", scanInput.CommitID),
	)
	logger.Info("Starting GitHub repository scan")

	if err := uc.ScanGitHubRepo(ctx, scanInput); err != nil {
		errutil.HandleError(ctx, "Background scan failed", err)
	} else {
		logger.Info("GitHub repository scan completed successfully")
	}
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

func githubEventToScanInput(event interface{}) *model.ScanGitHubRepoInput {
	switch ev := event.(type) {
	case *github.PushEvent:
		if ev.HeadCommit == nil || ev.HeadCommit.ID == nil {
			logging.Default().Warn("ignore push event without head commit", slog.Any("event", ev))
			return nil
		}
		if ev.GetDeleted() {
			logging.Default().Debug("ignore branch deletion", slog.String("ref", ev.GetRef()))
			return nil
		}

		return &model.ScanGitHubRepoInput{
			Owner:     ev.GetRepo().GetOwner().GetLogin(),
			RepoName:  ev.GetRepo().GetName(),
			CloneURL:  ev.GetRepo().GetCloneURL(),
			Branch:    refToBranch(ev.GetRef()),
			CommitID:  ev.GetHeadCommit().GetID(),
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}

	case *github.PullRequestEvent:
		if ev.GetAction() != "opened" && ev.GetAction() != "synchronize" {
			logging.Default().Debug("ignore PR event", slog.String("action", ev.GetAction()))
			return nil
		}
		if ev.GetPullRequest().GetDraft() {
			logging.Default().Debug("ignore draft PR", slog.String("action", ev.GetAction()))
			return nil
		}

		pr := ev.GetPullRequest()
		// Head of a PR from a fork lives in another repository that the installation
		// token may not read. The base repository has the PR ref in any case.
		return &model.ScanGitHubRepoInput{
			Owner:     ev.GetRepo().GetOwner().GetLogin(),
			RepoName:  ev.GetRepo().GetName(),
			CloneURL:  ev.GetRepo().GetCloneURL(),
			Branch:    pr.GetHead().GetRef(),
			CommitID:  pr.GetHead().GetSHA(),
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}

	case *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logging.Default().Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return nil
	}
}
