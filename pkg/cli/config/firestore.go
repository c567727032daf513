package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore configures the scan record storage. Records are kept only when a project is set.
type Firestore struct {
	projectID  string
	databaseID string
	collection string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to store scan records (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOLEAK_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOLEAK_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection of scan records",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOLEAK_FIRESTORE_COLLECTION"),
			Value:       firestore.DefaultCollection,
			Destination: &x.collection,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID),
		slog.String("databaseID", x.databaseID),
		slog.String("collection", x.collection),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.ScanRepository, error) {
	return firestore.New(ctx, x.projectID, x.databaseID, firestore.WithCollection(x.collection))
}
