package gitrepo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
)

// Nothing listens on port 1 of the loopback address, so a clone fails fast without network access
const unreachableURL = "http://127.0.0.1:1/secret/repo.git"

func TestCloneFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("unreachable remote is a repository access error", func(t *testing.T) {
		client := gitrepo.New(gitrepo.WithCloneTimeout(10 * time.Second))
		_, err := client.Clone(ctx, &interfaces.CloneInput{URL: unreachableURL})
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
	})

	t.Run("workspace is reset and released", func(t *testing.T) {
		workspace := filepath.Join(t.TempDir(), "ws")
		gt.NoError(t, os.MkdirAll(workspace, 0700))
		stale := filepath.Join(workspace, "stale.txt")
		gt.NoError(t, os.WriteFile(stale, []byte("x"), 0600))

		client := gitrepo.New(
			gitrepo.WithWorkspace(workspace),
			gitrepo.WithCloneTimeout(10*time.Second),
			gitrepo.WithToken("dummy-token"),
		)

		_, err := client.Clone(ctx, &interfaces.CloneInput{URL: unreachableURL})
		gt.Error(t, err)

		_, statErr := os.Stat(stale)
		gt.True(t, os.IsNotExist(statErr))

		// a second clone must not block on the workspace lock
		done := make(chan error, 1)
		go func() {
			_, err := client.Clone(ctx, &interfaces.CloneInput{URL: unreachableURL})
			done <- err
		}()

		select {
		case err := <-done:
			gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
		case <-time.After(30 * time.Second):
			t.Fatal("workspace was not released")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		client := gitrepo.New()
		_, err := client.Clone(cctx, &interfaces.CloneInput{URL: unreachableURL})
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
	})
}
