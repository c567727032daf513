package server

import (
	"context"
	"time"

	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// backgroundScanTimeout bounds a scan started by a webhook. Clone has its own deadline,
// this one covers the history walk and detection as well.
const backgroundScanTimeout = 30 * time.Minute

// DetachContext returns a context that survives the HTTP request of ctx. It keeps the
// logger, request ID and clock of ctx and is cancelled after timeout.
func DetachContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	bgCtx := logging.InheritContextValues(context.Background(), ctx)
	return context.WithTimeout(bgCtx, timeout)
}
