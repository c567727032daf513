package presenter

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

// JSONWriter writes all results as one JSON array
type JSONWriter struct{}

func (x *JSONWriter) Write(w io.Writer, results []*model.ScanResult) error {
	if results == nil {
		results = []*model.ScanResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return goerr.Wrap(err, "failed to encode scan results")
	}
	return nil
}
