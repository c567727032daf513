package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type scanRepository struct {
	client     *firestore.Client
	collection string
}

// ToFirestoreID validates a scan ID as a Firestore document ID. Document IDs must not
// contain "/" and must not be "." or "..".
func ToFirestoreID(scanID types.ScanID) (string, error) {
	id := string(scanID)
	if id == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "scan ID is empty")
	}

	if strings.Contains(id, "/") || id == "." || id == ".." {
		return "", goerr.Wrap(repository.ErrInvalidInput, "scan ID is not a valid document ID",
			goerr.V("scanID", scanID),
		)
	}

	return id, nil
}

func (r *scanRepository) PutScan(ctx context.Context, scan *model.ScanRecord) error {
	if scan == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "scan is nil")
	}
	docID, err := ToFirestoreID(scan.ID)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection).Doc(docID).Set(ctx, scan); err != nil {
		return goerr.Wrap(err, "failed to put scan",
			goerr.V("scanID", scan.ID),
		)
	}

	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, scanID types.ScanID) (*model.ScanRecord, error) {
	docID, err := ToFirestoreID(scanID)
	if err != nil {
		return nil, err
	}

	snap, err := r.client.Collection(r.collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
				goerr.V("scanID", scanID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get scan",
			goerr.V("scanID", scanID),
		)
	}

	var scan model.ScanRecord
	if err := snap.DataTo(&scan); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scan",
			goerr.V("scanID", scanID),
		)
	}

	return &scan, nil
}

// ListScans sorts on the client side so that no composite index is required
func (r *scanRepository) ListScans(ctx context.Context, target string, limit int) ([]*model.ScanRecord, error) {
	query := r.client.Collection(r.collection).Where("target", "==", target)

	iter := query.Documents(ctx)
	defer iter.Stop()

	scans := []*model.ScanRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scans",
				goerr.V("target", target),
			)
		}

		var scan model.ScanRecord
		if err := doc.DataTo(&scan); err != nil {
			return nil, goerr.Wrap(err, "failed to decode scan",
				goerr.V("docID", doc.Ref.ID),
			)
		}
		scans = append(scans, &scan)
	}

	sort.SliceStable(scans, func(i, j int) bool {
		if scans[i].Timestamp.Equal(scans[j].Timestamp) {
			return scans[i].ID < scans[j].ID
		}
		return scans[i].Timestamp.After(scans[j].Timestamp)
	})
	if limit > 0 && len(scans) > limit {
		scans = scans[:limit]
	}

	return scans, nil
}
