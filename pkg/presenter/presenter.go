// Package presenter renders scan results for the command line.
package presenter

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// Writer writes the results of one invocation
type Writer interface {
	Write(w io.Writer, results []*model.ScanResult) error
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns the writer of the format
func New(format string) (Writer, error) {
	switch format {
	case FormatText:
		return &TextWriter{}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported output format", goerr.V("format", format))
	}
}
