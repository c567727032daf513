package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
)

const maxScanRequestSize = 1 << 20

type scanRequest struct {
	Targets []string `json:"targets"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// parseScanRequest decodes the request and checks that every target is a remote repository.
// Local paths are refused so that a client can not read files of the server host.
func parseScanRequest(r *http.Request) (*scanRequest, error) {
	var req scanRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxScanRequestSize)).Decode(&req); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error()))
	}

	if len(req.Targets) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "targets is empty")
	}

	for _, input := range req.Targets {
		target, err := model.ClassifyTarget(input)
		if err != nil {
			return nil, err
		}
		if target.Kind != types.TargetRepository {
			return nil, goerr.Wrap(types.ErrValidationFailed, "only remote repositories can be scanned via API", goerr.V("target", input))
		}
	}

	return &req, nil
}

func handleScanRequest(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	req, err := parseScanRequest(r)
	if err != nil {
		logging.From(r.Context()).Warn("invalid scan request", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := uc.ScanTargets(r.Context(), req.Targets)
	writeJSON(w, http.StatusOK, results)
}
