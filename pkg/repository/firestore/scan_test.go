package firestore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/repository"
	"github.com/m-mizutani/octoleak/pkg/repository/firestore"
	"github.com/m-mizutani/octoleak/pkg/repository/testhelper"
	"github.com/m-mizutani/octoleak/pkg/utils/testutil"
)

func TestFirestoreScanRepository(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, envs[0], envs[1],
		firestore.WithCollection("scan_test_"+uuid.NewString()),
	)
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	// Valid cases
	id, err := firestore.ToFirestoreID("0b4a3c2e-6a43-4c5e-9d1f-9f3b1a0e2c11")
	gt.NoError(t, err)
	gt.V(t, id).Equal("0b4a3c2e-6a43-4c5e-9d1f-9f3b1a0e2c11")

	// Invalid cases
	_, err = firestore.ToFirestoreID("")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID(types.ScanID("a/b"))
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("..")
	gt.Error(t, err)
}

func TestNewInvalidCollection(t *testing.T) {
	ctx := context.Background()
	_, err := firestore.New(ctx, "test-project", "", firestore.WithCollection("a/b"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	_, err = firestore.New(ctx, "test-project", "", firestore.WithCollection(""))
	gt.Error(t, err)
}
