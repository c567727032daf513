package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
	"github.com/m-mizutani/octoleak/pkg/usecase"
)

func TestPairCommits(t *testing.T) {
	commits := []model.CommitRef{{ID: "c3"}, {ID: "c2"}, {ID: "c1"}}

	t.Run("each commit is paired with the next one", func(t *testing.T) {
		pairs := usecase.PairCommitsForTest("origin/main", commits)
		gt.A(t, pairs).Length(3)

		gt.V(t, pairs[0].Commit.ID).Equal(types.CommitSHA("c3"))
		gt.V(t, pairs[0].PredecessorID()).Equal(types.CommitSHA("c2"))
		gt.V(t, pairs[1].PredecessorID()).Equal(types.CommitSHA("c1"))
		gt.V(t, pairs[0].Branch).Equal(types.BranchName("origin/main"))
	})

	t.Run("last commit is paired with the empty tree", func(t *testing.T) {
		pairs := usecase.PairCommitsForTest("origin/main", commits)
		gt.V(t, pairs[2].Predecessor == nil).Equal(true)
		gt.V(t, pairs[2].PredecessorID()).Equal(types.EmptyTreeSHA)
	})

	t.Run("single commit", func(t *testing.T) {
		pairs := usecase.PairCommitsForTest("origin/main", commits[:1])
		gt.A(t, pairs).Length(1)
		gt.V(t, pairs[0].PredecessorID()).Equal(types.EmptyTreeSHA)
	})

	t.Run("no commits", func(t *testing.T) {
		gt.A(t, usecase.PairCommitsForTest("origin/main", nil)).Length(0)
	})
}

func TestWalkHistory(t *testing.T) {
	fx, hashes := historyFixture(t)
	repo := gitrepo.Wrap(fx.Repo)
	ctx := context.Background()

	t.Run("branches in lexical order, commits newest first", func(t *testing.T) {
		pairs := gt.R1(usecase.WalkHistoryForTest(ctx, repo, 100)).NoError(t)
		gt.A(t, pairs).Length(6)

		// origin/dev: c2, c1
		gt.V(t, pairs[0].Branch).Equal(types.BranchName("origin/dev"))
		gt.V(t, pairs[0].Commit.ID).Equal(sha(hashes[1]))
		gt.V(t, pairs[1].Commit.ID).Equal(sha(hashes[0]))
		gt.V(t, pairs[1].PredecessorID()).Equal(types.EmptyTreeSHA)

		// origin/main: c4, c3, c2, c1
		gt.V(t, pairs[2].Branch).Equal(types.BranchName("origin/main"))
		gt.V(t, pairs[2].Commit.ID).Equal(sha(hashes[3]))
		gt.V(t, pairs[2].PredecessorID()).Equal(sha(hashes[2]))
		gt.V(t, pairs[5].Commit.ID).Equal(sha(hashes[0]))
	})

	t.Run("depth bound caps each branch", func(t *testing.T) {
		pairs := gt.R1(usecase.WalkHistoryForTest(ctx, repo, 2)).NoError(t)
		gt.A(t, pairs).Length(4)

		// oldest commit of the main window is c3, diffed against the empty tree
		gt.V(t, pairs[3].Commit.ID).Equal(sha(hashes[2]))
		gt.V(t, pairs[3].PredecessorID()).Equal(types.EmptyTreeSHA)
	})

	t.Run("non-positive depth is rejected", func(t *testing.T) {
		_, err := usecase.WalkHistoryForTest(ctx, repo, 0)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
