package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// walkHistory enumerates every remote branch and pairs each commit of its window with
// its predecessor. Pairs are flattened in branch order, then newest first.
func walkHistory(ctx context.Context, repo interfaces.GitRepository, maxDepth int) ([]model.CommitPair, error) {
	if maxDepth <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max depth must be positive", goerr.V("max_depth", maxDepth))
	}

	branches, err := repo.Branches(ctx)
	if err != nil {
		return nil, err
	}

	var pairs []model.CommitPair
	for _, branch := range branches {
		commits, err := repo.Commits(ctx, branch, maxDepth)
		if err != nil {
			return nil, err
		}

		logging.From(ctx).Debug("walked branch",
			slog.String("branch", branch.String()),
			slog.Int("commits", len(commits)),
		)
		pairs = append(pairs, pairCommits(branch, commits)...)
	}

	return pairs, nil
}

// pairCommits couples commit i with commit i+1 of the window. The last commit of the
// window is paired with the empty tree, even when it has parents outside the window.
func pairCommits(branch types.BranchName, commits []model.CommitRef) []model.CommitPair {
	pairs := make([]model.CommitPair, 0, len(commits))
	for i := range commits {
		pair := model.CommitPair{
			Branch: branch,
			Commit: commits[i],
		}
		if i+1 < len(commits) {
			prev := commits[i+1]
			pair.Predecessor = &prev
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
