package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

type UseCase interface {
	ScanTargets(ctx context.Context, inputs []string) []*model.ScanResult
	ScanGitHubRepo(ctx context.Context, input *model.ScanGitHubRepoInput) error
}
