package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/m-mizutani/octoleak/pkg/utils/safe"
)

// ScanRepository clones the repository and scans the history of every remote branch.
// token overrides the git client's default credential when set. The working copy is
// released before returning.
func (x *UseCase) ScanRepository(ctx context.Context, url string, token types.GitToken) (*model.Report, error) {
	startedAt := logging.CtxTime(ctx).UTC()

	repo, err := x.clients.Git().Clone(ctx, &interfaces.CloneInput{
		URL:   url,
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	defer safe.Close(repo)

	commits, skipped, err := x.scanHistory(ctx, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan history", goerr.V("url", url))
	}

	report := &model.Report{
		ScanID:    types.NewScanID(),
		Timestamp: startedAt,
		Target:    model.Target{Kind: types.TargetRepository, Value: url},
		Commits:   commits,
		Skipped:   skipped,
	}

	logging.From(ctx).Info("repository scanned",
		slog.String("url", url),
		slog.Int("commits", len(commits)),
		slog.Int("skipped", len(skipped)),
		slog.Int("findings", report.FindingCount()),
		slog.Duration("elapsed", time.Since(startedAt)),
	)

	return report, nil
}

// scanHistory runs walk, dedup, extraction and detection over an opened repository. A
// commit whose diff cannot be computed is reported as skipped; any other failure aborts.
func (x *UseCase) scanHistory(ctx context.Context, repo interfaces.GitRepository) ([]*model.Commit, []model.SkippedCommit, error) {
	pairs, err := walkHistory(ctx, repo, x.maxDepth)
	if err != nil {
		return nil, nil, err
	}

	unique := dedupPairs(pairs)
	logging.From(ctx).Debug("deduplicated commit pairs",
		slog.Int("walked", len(pairs)),
		slog.Int("unique", len(unique)),
	)

	commits := make([]*model.Commit, 0, len(unique))
	skipped := []model.SkippedCommit{}

	for _, pair := range unique {
		if err := ctx.Err(); err != nil {
			return nil, nil, goerr.Wrap(err, "scan cancelled")
		}

		blobs, err := repo.Diff(ctx, pair.Commit.ID, pair.PredecessorID())
		if err != nil {
			if !errors.Is(err, types.ErrDiffComputation) || ctx.Err() != nil {
				return nil, nil, err
			}

			logging.From(ctx).Warn("skip commit, diff not computable",
				slog.String("branch", pair.Branch.String()),
				slog.String("commit", pair.Commit.ID.String()),
				slog.String("predecessor", pair.PredecessorID().String()),
				slog.Any("error", err),
			)
			skipped = append(skipped, model.SkippedCommit{
				Branch:        pair.Branch,
				CommitID:      pair.Commit.ID,
				PredecessorID: pair.PredecessorID(),
				Error:         err.Error(),
			})
			continue
		}

		commits = append(commits, model.NewCommit(pair, blobs))
	}

	detected, err := applyDetectors(ctx, commits, x.entropy, x.regex, x.workers)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to apply detectors")
	}

	return detected, skipped, nil
}
