package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/repository"
)

// DefaultCollection stores scan records unless WithCollection is given
const DefaultCollection = "scan"

type Option func(*scanRepository)

// WithCollection changes the top level collection of scan records. Tests use it to keep
// their records apart from each other.
func WithCollection(name string) Option {
	return func(r *scanRepository) {
		r.collection = name
	}
}

// New creates a scan record repository on Firestore. An empty databaseID selects the
// default database of the project.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.ScanRepository, error) {
	repo := &scanRepository{
		collection: DefaultCollection,
	}
	for _, opt := range options {
		opt(repo)
	}

	if repo.collection == "" || strings.Contains(repo.collection, "/") {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid collection name",
			goerr.V("collection", repo.collection),
		)
	}

	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo.client = client
	return repo, nil
}
