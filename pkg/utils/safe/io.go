package safe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// Close closes a file, a cloned repository or a stream and logs a failure. io.EOF and
// closing twice are not failures.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return
		}
		logging.Default().Warn("Fail to close resource",
			slog.String("type", fmt.Sprintf("%T", closer)),
			slog.Any("error", err),
		)
	}
}

// RemoveAll removes a clone workspace and logs a failure. A leftover workspace only costs
// disk space, so the caller carries on.
func RemoveAll(path string) {
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove directory",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
