package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// kinds are the sentinel errors used to group events in Sentry
var kinds = []error{
	types.ErrRepositoryAccess,
	types.ErrDiffComputation,
	types.ErrRuleConfig,
	types.ErrInputClassification,
	types.ErrValidationFailed,
	types.ErrInvalidOption,
	types.ErrInvalidGitHubData,
}

// ErrorKind returns the message of the sentinel error that err wraps, or "unknown"
func ErrorKind(err error) string {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "unknown"
}

// HandleError reports err to Sentry, when configured, and logs it with the event ID
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error.kind", ErrorKind(err))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"error.kind", ErrorKind(err),
		"sentry.EventID", evID,
	)
}
