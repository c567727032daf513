package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
	"github.com/m-mizutani/octoleak/pkg/utils/testutil"
)

func TestBranches(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	c1 := fx.Commit("first", map[string][]byte{"a.txt": []byte("a\n")})
	c2 := fx.Commit("second", map[string][]byte{"b.txt": []byte("b\n")})

	fx.Publish("main", c2)
	fx.Publish("dev", c1)
	fx.Publish("feature/x", c2)
	gt.NoError(t, fx.Repo.Storer.SetReference(plumbing.NewSymbolicReference(
		plumbing.ReferenceName("refs/remotes/origin/HEAD"),
		plumbing.NewRemoteReferenceName("origin", "main"),
	)))

	repo := gitrepo.Wrap(fx.Repo)
	branches := gt.R1(repo.Branches(context.Background())).NoError(t)
	gt.V(t, branches).Equal([]types.BranchName{"origin/dev", "origin/feature/x", "origin/main"})
}

func TestBranchesWithoutRemote(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	fx.Commit("first", map[string][]byte{"a.txt": []byte("a\n")})

	branches := gt.R1(gitrepo.Wrap(fx.Repo).Branches(context.Background())).NoError(t)
	gt.A(t, branches).Length(0)
}

func TestCommits(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	var hashes []plumbing.Hash
	for _, name := range []string{"a", "b", "c", "d"} {
		hashes = append(hashes, fx.Commit("add "+name, map[string][]byte{name + ".txt": []byte(name + "\n")}))
	}
	fx.Publish("main", hashes[3])

	repo := gitrepo.Wrap(fx.Repo)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		commits := gt.R1(repo.Commits(ctx, "origin/main", 100)).NoError(t)
		gt.A(t, commits).Length(4)
		gt.V(t, commits[0].ID).Equal(types.CommitSHA(hashes[3].String()))
		gt.V(t, commits[3].ID).Equal(types.CommitSHA(hashes[0].String()))
		gt.V(t, commits[0].Message).Equal("add d")
		gt.V(t, commits[0].Author).Equal("blue")
		gt.V(t, commits[0].Timestamp.Unix()).Equal(fx.Time().Unix())
	})

	t.Run("depth bound", func(t *testing.T) {
		commits := gt.R1(repo.Commits(ctx, "origin/main", 2)).NoError(t)
		gt.A(t, commits).Length(2)
		gt.V(t, commits[0].ID).Equal(types.CommitSHA(hashes[3].String()))
		gt.V(t, commits[1].ID).Equal(types.CommitSHA(hashes[2].String()))
	})

	t.Run("depth of one", func(t *testing.T) {
		commits := gt.R1(repo.Commits(ctx, "origin/main", 1)).NoError(t)
		gt.A(t, commits).Length(1)
	})

	t.Run("non-positive depth is rejected", func(t *testing.T) {
		_, err := repo.Commits(ctx, "origin/main", 0)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("unknown branch", func(t *testing.T) {
		_, err := repo.Commits(ctx, "origin/nope", 10)
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.Commits(cctx, "origin/main", 10)
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
	})
}
