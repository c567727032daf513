package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/cli/config"
	"github.com/m-mizutani/octoleak/pkg/infra"
)

// storageOptions returns the infra options of the enabled storages. Both are optional and
// a scan without them only reports to the caller.
func storageOptions(ctx context.Context, bigQuery *config.BigQuery, firestore *config.Firestore) ([]infra.Option, error) {
	var options []infra.Option

	bqClient, err := bigQuery.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	}
	if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	if firestore.Enabled() {
		repo, err := firestore.NewRepository(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Firestore repository")
		}
		options = append(options, infra.WithScanRepository(repo))
	}

	return options, nil
}
