package usecase

import (
	"context"

	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

// Export unexported functions for testing
var (
	PairCommitsForTest                 = pairCommits
	WalkHistoryForTest                 = walkHistory
	DedupPairsForTest                  = dedupPairs
	ApplyDetectorsForTest              = applyDetectors
	IsBinaryForTest                    = isBinary
	SplitLinesForTest                  = splitLines
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)

func (x *UseCase) ScanHistoryForTest(ctx context.Context, repo interfaces.GitRepository) ([]*model.Commit, []model.SkippedCommit, error) {
	return x.scanHistory(ctx, repo)
}
