package infra

import (
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
)

type Clients struct {
	githubApp      interfaces.GitHubApp
	gitClient      interfaces.GitClient
	bqClient       interfaces.BigQuery
	scanRepository interfaces.ScanRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		gitClient: gitrepo.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Git() interfaces.GitClient {
	return x.gitClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ScanRepository() interfaces.ScanRepository {
	return x.scanRepository
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithGit(client interfaces.GitClient) Option {
	return func(x *Clients) {
		x.gitClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithScanRepository(repo interfaces.ScanRepository) Option {
	return func(x *Clients) {
		x.scanRepository = repo
	}
}
