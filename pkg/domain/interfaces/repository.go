package interfaces

import (
	"context"

	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

//go:generate moq -out ../mock/scan_repository_mock.go -pkg mock . ScanRepository

// ScanRepository stores summaries of finished scans
type ScanRepository interface {
	PutScan(ctx context.Context, scan *model.ScanRecord) error
	GetScan(ctx context.Context, id types.ScanID) (*model.ScanRecord, error)
	// ListScans returns scans of the target, newest first. limit <= 0 means no limit.
	ListScans(ctx context.Context, target string, limit int) ([]*model.ScanRecord, error)
}
