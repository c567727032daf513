package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/mock"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
	"github.com/m-mizutani/octoleak/pkg/usecase"
)

// digest renders what a scan found in a form that can be compared across runs
func digest(commits []*model.Commit) []string {
	var out []string
	for _, c := range commits {
		out = append(out, fmt.Sprintf("%s %s %s", c.Branch, c.ID, c.PredecessorID))
		for _, b := range c.Blobs {
			out = append(out, fmt.Sprintf("  %s lines=%d", b.Path(), len(b.Lines)))
			for _, f := range append(append([]model.Finding{}, b.EntropyFindings...), b.RegexFindings...) {
				out = append(out, fmt.Sprintf("    %s %s %d %d-%d %s", f.Kind, f.RuleID, f.Line, f.Start, f.End, f.Match))
			}
		}
	}
	return out
}

func TestScanHistory(t *testing.T) {
	fx, hashes := historyFixture(t)
	repo := gitrepo.Wrap(fx.Repo)
	entropy, regex := finders(t)

	newUC := func(options ...usecase.Option) *usecase.UseCase {
		options = append([]usecase.Option{
			usecase.WithEntropyFinder(entropy),
			usecase.WithRegexFinder(regex),
		}, options...)
		return usecase.New(infra.New(), options...)
	}

	t.Run("each change is reported once and attributed to the first branch", func(t *testing.T) {
		commits, skipped := scanHistory(t, newUC(), repo)
		gt.A(t, skipped).Length(0)
		gt.A(t, commits).Length(4)

		gt.V(t, commits[0].ID).Equal(sha(hashes[1]))
		gt.V(t, commits[0].Branch).Equal(types.BranchName("origin/dev"))
		gt.V(t, commits[1].ID).Equal(sha(hashes[0]))
		gt.V(t, commits[1].Branch).Equal(types.BranchName("origin/dev"))
		gt.V(t, commits[2].ID).Equal(sha(hashes[3]))
		gt.V(t, commits[2].Branch).Equal(types.BranchName("origin/main"))
		gt.V(t, commits[3].ID).Equal(sha(hashes[2]))

		seen := map[types.DiffHash]bool{}
		for _, c := range commits {
			gt.False(t, seen[c.DiffHash])
			seen[c.DiffHash] = true
		}
	})

	t.Run("AWS key is found by the regex finder", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(), repo)
		gt.V(t, regexRuleIDs(commits[0])).Equal([]string{"AWS API Key"})
		gt.V(t, commits[0].Blobs[0].RegexFindings[0].Match).Equal(testAWSKey)
	})

	t.Run("random token is found by the entropy finder", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(), repo)
		gt.V(t, blobPaths(commits[2])).Equal([]string{"token.txt"})
		gt.A(t, commits[2].Blobs[0].EntropyFindings).Any(func(v model.Finding) bool {
			return v.Match == testRandomToken && v.RuleID == "base64"
		})
	})

	t.Run("binary file is excluded from its commit", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(), repo)
		gt.V(t, blobPaths(commits[3])).Equal([]string{"README.md"})
	})

	t.Run("oldest commit of the window is diffed against the empty tree", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(usecase.WithMaxDepth(2)), repo)
		gt.A(t, commits).Length(4)

		oldest := commits[3]
		gt.V(t, oldest.ID).Equal(sha(hashes[2]))
		gt.V(t, oldest.PredecessorID).Equal(types.EmptyTreeSHA)
		// the full tree shows up as additions, still without the binary file
		gt.V(t, blobPaths(oldest)).Equal([]string{"README.md", "aws.env"})
		gt.V(t, regexRuleIDs(oldest)).Equal([]string{"AWS API Key"})
	})

	t.Run("depth of one scans only branch tips", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(usecase.WithMaxDepth(1)), repo)
		gt.A(t, commits).Length(2)
		for _, c := range commits {
			gt.V(t, c.PredecessorID).Equal(types.EmptyTreeSHA)
		}
	})

	t.Run("deterministic across runs and worker counts", func(t *testing.T) {
		first, _ := scanHistory(t, newUC(usecase.WithWorkers(1)), repo)
		second, _ := scanHistory(t, newUC(usecase.WithWorkers(8)), repo)
		gt.V(t, digest(second)).Equal(digest(first))
	})

	t.Run("commit metadata is carried", func(t *testing.T) {
		commits, _ := scanHistory(t, newUC(), repo)
		gt.V(t, commits[2].Message).Equal("add token")
		gt.V(t, commits[2].CommitTime()).Equal(fx.Time().Format("2006-01-02 15:04:05"))
	})

	t.Run("disabled detectors report no findings", func(t *testing.T) {
		uc := usecase.New(infra.New())
		commits, _ := scanHistory(t, uc, repo)
		for _, c := range commits {
			gt.V(t, c.FindingCount()).Equal(0)
		}
	})
}

func TestScanHistorySkipsUncomputableDiff(t *testing.T) {
	ctx := context.Background()
	_, regex := finders(t)

	newRepo := func(diffErr error) *mock.GitRepositoryMock {
		return &mock.GitRepositoryMock{
			BranchesFunc: func(ctx context.Context) ([]types.BranchName, error) {
				return []types.BranchName{"origin/main"}, nil
			},
			CommitsFunc: func(ctx context.Context, branch types.BranchName, maxDepth int) ([]model.CommitRef, error) {
				return []model.CommitRef{{ID: "c3"}, {ID: "c2"}, {ID: "c1"}}, nil
			},
			DiffFunc: func(ctx context.Context, commit, predecessor types.CommitSHA) ([]*model.DiffBlob, error) {
				if commit == "c2" {
					return nil, diffErr
				}
				return []*model.DiffBlob{
					{FileB: strPtr("a.env"), Lines: []string{"+key=" + testAWSKey}},
				}, nil
			},
		}
	}

	t.Run("diff computation error is skipped and reported", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithRegexFinder(regex))
		repo := newRepo(goerr.Wrap(types.ErrDiffComputation, "broken object"))

		commits, skipped := scanHistory(t, uc, repo)
		gt.A(t, commits).Length(2)
		gt.V(t, commits[0].ID).Equal(types.CommitSHA("c3"))
		gt.V(t, commits[1].ID).Equal(types.CommitSHA("c1"))
		gt.A(t, commits[1].Blobs[0].RegexFindings).Length(1)

		gt.A(t, skipped).Length(1)
		gt.V(t, skipped[0].CommitID).Equal(types.CommitSHA("c2"))
		gt.V(t, skipped[0].PredecessorID).Equal(types.CommitSHA("c1"))
		gt.V(t, skipped[0].Branch).Equal(types.BranchName("origin/main"))
		gt.V(t, skipped[0].Error).NotEqual("")
	})

	t.Run("other errors abort the scan", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, _, err := uc.ScanHistoryForTest(ctx, newRepo(errors.New("disk on fire")))
		gt.Error(t, err)
	})

	t.Run("branch listing failure aborts the scan", func(t *testing.T) {
		uc := usecase.New(infra.New())
		repo := newRepo(nil)
		repo.BranchesFunc = func(ctx context.Context) ([]types.BranchName, error) {
			return nil, goerr.Wrap(types.ErrRepositoryAccess, "no refs")
		}

		_, _, err := uc.ScanHistoryForTest(ctx, repo)
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
		gt.A(t, repo.DiffCalls()).Length(0)
	})

	t.Run("cancelled context aborts without output", func(t *testing.T) {
		uc := usecase.New(infra.New())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		commits, skipped, err := uc.ScanHistoryForTest(cctx, newRepo(nil))
		gt.Error(t, err)
		gt.A(t, commits).Length(0)
		gt.A(t, skipped).Length(0)
	})
}

func TestScanRepository(t *testing.T) {
	ctx := context.Background()
	fx, _ := historyFixture(t)
	_, regex := finders(t)

	t.Run("working copy is released after the scan", func(t *testing.T) {
		var closed int
		mockGit := &mock.GitClientMock{
			CloneFunc: func(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
				gt.V(t, input.URL).Equal("https://github.com/blue/repo.git")
				gt.V(t, input.Token).Equal(types.GitToken(""))

				repo := gitrepo.Wrap(fx.Repo)
				return &mock.GitRepositoryMock{
					BranchesFunc: repo.Branches,
					CommitsFunc:  repo.Commits,
					DiffFunc:     repo.Diff,
					CloseFunc: func() error {
						closed++
						return nil
					},
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGit(mockGit)), usecase.WithRegexFinder(regex))
		report := gt.R1(uc.ScanRepository(ctx, "https://github.com/blue/repo.git", "")).NoError(t)

		gt.V(t, closed).Equal(1)
		gt.V(t, report.Target.Kind).Equal(types.TargetRepository)
		gt.V(t, report.Target.Value).Equal("https://github.com/blue/repo.git")
		gt.V(t, report.ScanID).NotEqual(types.ScanID(""))
		gt.A(t, report.Commits).Length(4)
		gt.V(t, report.FindingCount()).Equal(1)
	})

	t.Run("clone failure is returned", func(t *testing.T) {
		mockGit := &mock.GitClientMock{
			CloneFunc: func(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
				return nil, goerr.Wrap(types.ErrRepositoryAccess, "not found")
			},
		}

		uc := usecase.New(infra.New(infra.WithGit(mockGit)))
		_, err := uc.ScanRepository(ctx, "https://github.com/blue/none.git", "")
		gt.True(t, errors.Is(err, types.ErrRepositoryAccess))
	})
}
