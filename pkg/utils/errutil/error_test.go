package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := goerr.Wrap(types.ErrRepositoryAccess, "clone failed", goerr.V("url", "https://example.com/repo.git"))

		// Should not panic without sentry
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}

func TestErrorKind(t *testing.T) {
	testCases := map[string]struct {
		err    error
		expect string
	}{
		"repository access": {
			err:    goerr.Wrap(types.ErrRepositoryAccess, "clone failed"),
			expect: "repository access error",
		},
		"wrapped twice": {
			err:    goerr.Wrap(goerr.Wrap(types.ErrRuleConfig, "bad pattern"), "failed to load"),
			expect: "rule config error",
		},
		"plain error": {
			err:    errors.New("boom"),
			expect: "unknown",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, errutil.ErrorKind(tc.err)).Equal(tc.expect)
		})
	}
}
