package usecase

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/utils/logging"
	"github.com/m-mizutani/octoleak/pkg/utils/safe"
)

// binaryProbeSize is how many leading bytes decide whether a file is binary
const binaryProbeSize = 1024

// ScanFile scans a single local file. Paths that are not regular files and binary files
// are recorded with their classification and no content.
func (x *UseCase) ScanFile(ctx context.Context, path string) (*model.Report, error) {
	file, err := x.scanFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		ScanID:    types.NewScanID(),
		Timestamp: logging.CtxTime(ctx).UTC(),
		Target:    model.Target{Kind: types.TargetFile, Value: path},
		File:      file,
	}, nil
}

func (x *UseCase) scanFile(ctx context.Context, path string) (*model.File, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		logging.From(ctx).Debug("not a regular file", slog.String("path", path))
		return model.NewUnscannableFile(path, types.MimeNotAFile), nil
	}

	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	content, err := io.ReadAll(fd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	if isBinary(content) {
		return model.NewUnscannableFile(path, types.MimeBinaryFile), nil
	}

	file := &model.File{
		Path:     path,
		MimeType: mimetype.Detect(content).String(),
		Lines:    splitLines(string(content)),
	}

	return detectFile(file, x.entropy, x.regex), nil
}

// isBinary reports whether the leading bytes contain anything outside of printable
// characters and common control codes
func isBinary(content []byte) bool {
	if len(content) > binaryProbeSize {
		content = content[:binaryProbeSize]
	}

	for _, b := range content {
		switch {
		case b == 7, b == 8, b == 9, b == 10, b == 12, b == 13, b == 27:
		case b >= 0x20 && b != 0x7f:
		default:
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
