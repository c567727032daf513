package gitrepo

import (
	"context"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// Repository walks the history of an opened go-git repository
type Repository struct {
	repo    *git.Repository
	release func()
}

var _ interfaces.GitRepository = (*Repository)(nil)

// Wrap returns a Repository over an already opened repository. Close does nothing.
func Wrap(repo *git.Repository) *Repository {
	return &Repository{repo: repo}
}

func (x *Repository) Close() error {
	if x.release != nil {
		x.release()
		x.release = nil
	}
	return nil
}

// Branches returns remote-tracking branches (refs/remotes/*) in lexical order of their
// short name, e.g. "origin/main". Symbolic refs such as origin/HEAD are skipped.
func (x *Repository) Branches(ctx context.Context) ([]types.BranchName, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "context is done", goerr.V("cause", err.Error()))
	}

	refs, err := x.repo.References()
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to list references", goerr.V("cause", err.Error()))
	}
	defer refs.Close()

	var branches []types.BranchName
	if err := refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() || ref.Type() != plumbing.HashReference {
			return nil
		}
		short := ref.Name().Short()
		if strings.HasSuffix(short, "/HEAD") {
			return nil
		}
		branches = append(branches, types.BranchName(short))
		return nil
	}); err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to iterate references", goerr.V("cause", err.Error()))
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i] < branches[j] })
	return branches, nil
}

// Commits returns at most maxDepth commits reachable from the branch tip, newest first by
// committer time.
func (x *Repository) Commits(ctx context.Context, branch types.BranchName, maxDepth int) ([]model.CommitRef, error) {
	if maxDepth <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max depth must be positive", goerr.V("max_depth", maxDepth))
	}

	refName := plumbing.ReferenceName("refs/remotes/" + branch.String())
	ref, err := x.repo.Reference(refName, true)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to resolve branch",
			goerr.V("branch", branch),
			goerr.V("cause", err.Error()),
		)
	}

	iter, err := x.repo.Log(&git.LogOptions{
		From:  ref.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to read commit log",
			goerr.V("branch", branch),
			goerr.V("cause", err.Error()),
		)
	}
	defer iter.Close()

	var commits []model.CommitRef
	if err := iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, model.CommitRef{
			ID:        types.CommitSHA(c.Hash.String()),
			Timestamp: c.Committer.When,
			Author:    c.Author.Name,
			Message:   c.Message,
		})
		if len(commits) >= maxDepth {
			return storer.ErrStop
		}
		return nil
	}); err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryAccess, "failed to walk commits",
			goerr.V("branch", branch),
			goerr.V("cause", err.Error()),
		)
	}

	return commits, nil
}

// Fetch updates all remote-tracking branches of origin. An up-to-date repository is not an error.
func (x *Repository) Fetch(ctx context.Context, token types.GitToken) error {
	opt := &git.FetchOptions{
		RemoteName: git.DefaultRemoteName,
		Tags:       git.NoTags,
		Auth:       basicAuth(token),
	}

	if err := x.repo.FetchContext(ctx, opt); err != nil && err != git.NoErrAlreadyUpToDate {
		return goerr.Wrap(types.ErrRepositoryAccess, "failed to fetch", goerr.V("cause", err.Error()))
	}
	return nil
}
