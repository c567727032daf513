package usecase

import (
	"github.com/m-mizutani/octoleak/pkg/finder"
	"github.com/m-mizutani/octoleak/pkg/infra"
)

const (
	DefaultMaxDepth = 1000000
	DefaultWorkers  = 4
)

type UseCase struct {
	clients *infra.Clients

	entropy  finder.Finder
	regex    finder.Finder
	maxDepth int
	workers  int
}

type Option func(*UseCase)

// WithEntropyFinder enables entropy detection. A nil finder disables it.
func WithEntropyFinder(f finder.Finder) Option {
	return func(x *UseCase) {
		x.entropy = f
	}
}

// WithRegexFinder enables rule based detection. A nil finder disables it.
func WithRegexFinder(f finder.Finder) Option {
	return func(x *UseCase) {
		x.regex = f
	}
}

func WithMaxDepth(depth int) Option {
	return func(x *UseCase) {
		x.maxDepth = depth
	}
}

func WithWorkers(n int) Option {
	return func(x *UseCase) {
		x.workers = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:  clients,
		maxDepth: DefaultMaxDepth,
		workers:  DefaultWorkers,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
