package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// ScanTargets scans each input independently, in order. A failed input is recorded in
// its result and does not stop the remaining ones.
func (x *UseCase) ScanTargets(ctx context.Context, inputs []string) []*model.ScanResult {
	results := make([]*model.ScanResult, 0, len(inputs))

	for i, input := range inputs {
		logging.From(ctx).Info("scanning target",
			slog.Int("progress", i+1),
			slog.Int("total", len(inputs)),
			slog.String("input", input),
		)

		report, err := x.ScanTarget(ctx, input)
		if err != nil {
			logging.From(ctx).Warn("failed to scan target",
				slog.String("input", input),
				slog.Any("error", err),
			)
			results = append(results, &model.ScanResult{Input: input, Err: err})
			continue
		}

		results = append(results, &model.ScanResult{Input: input, Report: report})
	}

	return results
}

// ScanTarget classifies the input, scans it and stores the summary in the configured
// storages
func (x *UseCase) ScanTarget(ctx context.Context, input string) (*model.Report, error) {
	target, err := model.ClassifyTarget(input)
	if err != nil {
		return nil, err
	}

	var report *model.Report
	switch target.Kind {
	case types.TargetRepository:
		report, err = x.ScanRepository(ctx, target.Value, "")
	default:
		report, err = x.ScanFile(ctx, target.Value)
	}
	if err != nil {
		return nil, err
	}

	if err := x.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
