package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/repository"
)

type scanRepository struct {
	mu    sync.RWMutex
	scans map[string]*model.ScanRecord
}

func (r *scanRepository) PutScan(ctx context.Context, scan *model.ScanRecord) error {
	if scan == nil || scan.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scan ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.scans[string(scan.ID)] = copyScan(scan)
	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, scanID types.ScanID) (*model.ScanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scan, exists := r.scans[string(scanID)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("scanID", scanID),
		)
	}

	return copyScan(scan), nil
}

func (r *scanRepository) ListScans(ctx context.Context, target string, limit int) ([]*model.ScanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scans := []*model.ScanRecord{}
	for _, scan := range r.scans {
		if scan.Target == target {
			scans = append(scans, copyScan(scan))
		}
	}

	sortNewestFirst(scans)
	if limit > 0 && len(scans) > limit {
		scans = scans[:limit]
	}

	return scans, nil
}

func sortNewestFirst(scans []*model.ScanRecord) {
	sort.SliceStable(scans, func(i, j int) bool {
		if scans[i].Timestamp.Equal(scans[j].Timestamp) {
			return scans[i].ID < scans[j].ID
		}
		return scans[i].Timestamp.After(scans[j].Timestamp)
	})
}

// Helper functions to create copies

func copyScan(scan *model.ScanRecord) *model.ScanRecord {
	c := *scan
	c.Findings = make([]model.FindingRecord, len(scan.Findings))
	copy(c.Findings, scan.Findings)
	return &c
}
