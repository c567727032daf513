package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/mock"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
	"github.com/m-mizutani/octoleak/pkg/repository/memory"
	"github.com/m-mizutani/octoleak/pkg/usecase"
)

func TestScanTargets(t *testing.T) {
	ctx := context.Background()
	fx, _ := historyFixture(t)
	_, regex := finders(t)

	localPath := filepath.Join(t.TempDir(), "aws.env")
	gt.NoError(t, os.WriteFile(localPath, []byte("key="+testAWSKey+"\n"), 0600))

	mockGit := &mock.GitClientMock{
		CloneFunc: func(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
			if input.URL == "https://github.com/blue/missing.git" {
				return nil, goerr.Wrap(types.ErrRepositoryAccess, "repository not found")
			}
			return gitrepo.Wrap(fx.Repo), nil
		},
	}
	scanRepo := memory.New()

	uc := usecase.New(infra.New(
		infra.WithGit(mockGit),
		infra.WithScanRepository(scanRepo),
	), usecase.WithRegexFinder(regex))

	inputs := []string{
		"https://github.com/blue/missing.git",
		"<not a target>",
		"https://github.com/blue/repo.git",
		localPath,
	}

	results := uc.ScanTargets(ctx, inputs)
	gt.A(t, results).Length(4)

	t.Run("results follow input order", func(t *testing.T) {
		for i, res := range results {
			gt.V(t, res.Input).Equal(inputs[i])
		}
	})

	t.Run("unreachable repository fails only its item", func(t *testing.T) {
		gt.True(t, errors.Is(results[0].Err, types.ErrRepositoryAccess))
		gt.V(t, results[0].Report == nil).Equal(true)
	})

	t.Run("unclassifiable input fails only its item", func(t *testing.T) {
		gt.True(t, errors.Is(results[1].Err, types.ErrInputClassification))
	})

	t.Run("remote repository is scanned", func(t *testing.T) {
		gt.NoError(t, results[2].Err)
		gt.V(t, results[2].Report.Target.Kind).Equal(types.TargetRepository)
		gt.A(t, results[2].Report.Commits).Length(4)
	})

	t.Run("local file is scanned", func(t *testing.T) {
		gt.NoError(t, results[3].Err)
		gt.V(t, results[3].Report.Target.Kind).Equal(types.TargetFile)
		gt.A(t, results[3].Report.File.RegexFindings).Length(1)
	})

	t.Run("successful scans are stored without secrets", func(t *testing.T) {
		rec := gt.R1(scanRepo.GetScan(ctx, results[2].Report.ScanID)).NoError(t)
		gt.V(t, rec.Target).Equal("https://github.com/blue/repo.git")
		gt.V(t, rec.CommitCount).Equal(4)
		gt.A(t, rec.Findings).Length(1)
		gt.V(t, rec.Findings[0].RuleID).Equal("AWS API Key")
		gt.V(t, rec.Findings[0].Fingerprint).NotEqual(testAWSKey)

		list := gt.R1(scanRepo.ListScans(ctx, localPath, 0)).NoError(t)
		gt.A(t, list).Length(1)
	})
}
