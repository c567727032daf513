package testutil

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/m-mizutani/gt"
)

// GitFixture is an in-memory repository for tests. Commits are made on the worktree and
// published as remote-tracking branches, which is what a fresh clone looks like.
type GitFixture struct {
	t     *testing.T
	Repo  *git.Repository
	fs    billy.Filesystem
	clock time.Time
}

func NewGitFixture(t *testing.T) *GitFixture {
	t.Helper()
	fs := memfs.New()
	repo := gt.R1(git.Init(memory.NewStorage(), fs)).NoError(t)

	return &GitFixture{
		t:     t,
		Repo:  repo,
		fs:    fs,
		clock: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// Commit writes files (path → content) and commits them. A nil content removes the file.
// Each commit is one minute later than the previous one.
func (x *GitFixture) Commit(msg string, files map[string][]byte) plumbing.Hash {
	x.t.Helper()
	wt := gt.R1(x.Repo.Worktree()).NoError(x.t)

	for path, content := range files {
		if content == nil {
			gt.R1(wt.Remove(path)).NoError(x.t)
			continue
		}

		f := gt.R1(x.fs.Create(path)).NoError(x.t)
		gt.R1(f.Write(content)).NoError(x.t)
		gt.NoError(x.t, f.Close())
		gt.R1(wt.Add(path)).NoError(x.t)
	}

	x.clock = x.clock.Add(time.Minute)
	sig := &object.Signature{Name: "blue", Email: "blue@example.com", When: x.clock}
	return gt.R1(wt.Commit(msg, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})).NoError(x.t)
}

// Checkout moves HEAD to the commit, so that following commits fork from it
func (x *GitFixture) Checkout(hash plumbing.Hash) {
	x.t.Helper()
	wt := gt.R1(x.Repo.Worktree()).NoError(x.t)
	gt.NoError(x.t, wt.Checkout(&git.CheckoutOptions{Hash: hash, Force: true}))
}

// Publish points refs/remotes/origin/<branch> at the commit
func (x *GitFixture) Publish(branch string, hash plumbing.Hash) {
	x.t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", branch), hash)
	gt.NoError(x.t, x.Repo.Storer.SetReference(ref))
}

// Time returns the committer time of the most recent commit
func (x *GitFixture) Time() time.Time {
	return x.clock
}
