package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp GitClient GitRepository

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type GitHubApp interface {
	InstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (types.GitToken, error)
	GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error)
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error)
}

// GitClient acquires a local copy of a remote repository
type GitClient interface {
	Clone(ctx context.Context, input *CloneInput) (GitRepository, error)
}

type CloneInput struct {
	URL string
	// Token overrides the client's default token when set
	Token types.GitToken
}

// GitRepository is a cloned repository. Close releases the working copy.
type GitRepository interface {
	Branches(ctx context.Context) ([]types.BranchName, error)
	Commits(ctx context.Context, branch types.BranchName, maxDepth int) ([]model.CommitRef, error)
	Diff(ctx context.Context, commit, predecessor types.CommitSHA) ([]*model.DiffBlob, error)
	Close() error
}
