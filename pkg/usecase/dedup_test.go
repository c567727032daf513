package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/usecase"
)

func TestDedupPairs(t *testing.T) {
	c1 := model.CommitRef{ID: "c1"}
	c2 := model.CommitRef{ID: "c2"}
	c3 := model.CommitRef{ID: "c3"}

	pairs := []model.CommitPair{
		{Branch: "origin/dev", Commit: c2, Predecessor: &c1},
		{Branch: "origin/dev", Commit: c1},
		{Branch: "origin/main", Commit: c3, Predecessor: &c2},
		{Branch: "origin/main", Commit: c2, Predecessor: &c1},
		{Branch: "origin/main", Commit: c1},
	}

	t.Run("first occurrence wins and order is kept", func(t *testing.T) {
		kept := usecase.DedupPairsForTest(pairs)
		gt.A(t, kept).Length(3)

		gt.V(t, kept[0].Commit.ID).Equal(types.CommitSHA("c2"))
		gt.V(t, kept[0].Branch).Equal(types.BranchName("origin/dev"))
		gt.V(t, kept[1].Commit.ID).Equal(types.CommitSHA("c1"))
		gt.V(t, kept[1].Branch).Equal(types.BranchName("origin/dev"))
		gt.V(t, kept[2].Commit.ID).Equal(types.CommitSHA("c3"))
	})

	t.Run("no two kept pairs share a diff hash", func(t *testing.T) {
		seen := map[types.DiffHash]bool{}
		for _, p := range usecase.DedupPairsForTest(pairs) {
			gt.False(t, seen[p.DiffHash()])
			seen[p.DiffHash()] = true
		}
	})

	t.Run("same commit with a different predecessor is kept", func(t *testing.T) {
		kept := usecase.DedupPairsForTest([]model.CommitPair{
			{Branch: "origin/a", Commit: c2, Predecessor: &c1},
			{Branch: "origin/b", Commit: c2},
		})
		gt.A(t, kept).Length(2)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := usecase.DedupPairsForTest(pairs)
		twice := usecase.DedupPairsForTest(once)
		gt.A(t, twice).Length(len(once))
		for i := range once {
			gt.V(t, twice[i].DiffHash()).Equal(once[i].DiffHash())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		gt.A(t, usecase.DedupPairsForTest(nil)).Length(0)
	})
}
