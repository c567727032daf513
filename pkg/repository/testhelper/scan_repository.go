package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/repository"
)

// TestAll runs all test cases for ScanRepository
// This is the main entry point for testing any ScanRepository implementation
func TestAll(t *testing.T, repo interfaces.ScanRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
	t.Run("ListScans", func(t *testing.T) {
		TestListScans(t, repo)
	})
}

// newScan builds a record with unique ID and target so that tests do not interfere on
// shared backends
func newScan(target string, ts time.Time) *model.ScanRecord {
	return &model.ScanRecord{
		ID:          types.NewScanID(),
		Timestamp:   ts.UTC().Truncate(time.Microsecond),
		Target:      target,
		Kind:        types.TargetRepository,
		CommitCount: 3,
		Skipped:     1,
		Findings: []model.FindingRecord{
			{
				Branch:      "origin/main",
				CommitID:    "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
				CommitTime:  "2024-01-02 03:04:05",
				Path:        "aws.env",
				Kind:        string(types.FindingRegex),
				RuleID:      "AWS API Key",
				Line:        1,
				Fingerprint: "0b8e7e0ebc3fa8a4e4e0b5a4d8d9b0c6ffb14f3a2f5d6b1e7b3a3f5c9e1d2a4b",
			},
			{
				Branch:      "origin/main",
				CommitID:    "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
				CommitTime:  "2024-01-02 03:04:05",
				Path:        "token.txt",
				Kind:        string(types.FindingEntropy),
				RuleID:      "base64",
				Score:       5.32,
				Line:        1,
				Fingerprint: "4c1f1a0f6a5b0d8e2c3b7a9e8f6d5c4b3a2918f7e6d5c4b3a29180f7e6d5c4b3",
			},
		},
	}
}

func newTarget() string {
	return fmt.Sprintf("https://github.com/owner-%s/repo.git", uuid.New().String()[:8])
}

// TestPutAndGet tests that a stored record is returned unchanged
func TestPutAndGet(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	scan := newScan(newTarget(), time.Now())

	gt.NoError(t, repo.PutScan(ctx, scan))

	retrieved, err := repo.GetScan(ctx, scan.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(scan.ID)
	gt.V(t, retrieved.Target).Equal(scan.Target)
	gt.V(t, retrieved.Kind).Equal(scan.Kind)
	gt.V(t, retrieved.CommitCount).Equal(scan.CommitCount)
	gt.V(t, retrieved.Skipped).Equal(scan.Skipped)
	gt.V(t, retrieved.Timestamp.Unix()).Equal(scan.Timestamp.Unix())
	gt.V(t, retrieved.Findings).Equal(scan.Findings)
}

// TestOverwrite tests that putting the same scan ID replaces the record
func TestOverwrite(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	scan := newScan(newTarget(), time.Now())
	gt.NoError(t, repo.PutScan(ctx, scan))

	scan.Findings = []model.FindingRecord{}
	scan.CommitCount = 10
	gt.NoError(t, repo.PutScan(ctx, scan))

	retrieved, err := repo.GetScan(ctx, scan.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.CommitCount).Equal(10)
	gt.A(t, retrieved.Findings).Length(0)
}

// TestNotFound tests that an unknown scan ID is reported as ErrNotFound
func TestNotFound(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()

	_, err := repo.GetScan(ctx, types.NewScanID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestListScans tests filtering by target, ordering and limit
func TestListScans(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	target := newTarget()
	base := time.Now().Add(-time.Hour)

	var ids []types.ScanID
	for i := 0; i < 3; i++ {
		scan := newScan(target, base.Add(time.Duration(i)*time.Minute))
		gt.NoError(t, repo.PutScan(ctx, scan))
		ids = append(ids, scan.ID)
	}
	gt.NoError(t, repo.PutScan(ctx, newScan(newTarget(), base)))

	scans, err := repo.ListScans(ctx, target, 0)
	gt.NoError(t, err)
	gt.A(t, scans).Length(3)
	gt.V(t, scans[0].ID).Equal(ids[2])
	gt.V(t, scans[1].ID).Equal(ids[1])
	gt.V(t, scans[2].ID).Equal(ids[0])

	limited, err := repo.ListScans(ctx, target, 2)
	gt.NoError(t, err)
	gt.A(t, limited).Length(2)
	gt.V(t, limited[0].ID).Equal(ids[2])

	empty, err := repo.ListScans(ctx, newTarget(), 0)
	gt.NoError(t, err)
	gt.A(t, empty).Length(0)
}
