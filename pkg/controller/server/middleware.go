package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

// requestID of a webhook is its GitHub delivery ID so that logs can be matched with the
// delivery history of the app
func requestID(r *http.Request) types.RequestID {
	if id := github.DeliveryID(r); id != "" {
		return types.RequestID(id)
	}
	return types.NewRequestID()
}

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := requestID(r)
		logger := logging.Default().With(slog.String("request_id", reqID.String()))

		ctx := logging.With(r.Context(), logger)
		ctx = logging.CtxWithRequestID(ctx, reqID)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
