package gitrepo

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

const (
	binarySentinel = "Binary files"
	hunkPrefix     = "@@"
	contextLines   = 3
)

// Diff computes the change that turns predecessor into commit, one DiffBlob per changed
// file with the unified diff body split into lines. The empty tree sentinel stands for a
// root commit's predecessor. Binary files and changes without a body are left out.
func (x *Repository) Diff(ctx context.Context, commit, predecessor types.CommitSHA) ([]*model.DiffBlob, error) {
	wrap := func(err error, msg string) error {
		return goerr.Wrap(types.ErrDiffComputation, msg,
			goerr.V("commit", commit),
			goerr.V("predecessor", predecessor),
			goerr.V("cause", err.Error()),
		)
	}

	to, err := x.tree(commit)
	if err != nil {
		return nil, wrap(err, "failed to load commit tree")
	}

	var from *object.Tree
	if predecessor != types.EmptyTreeSHA {
		if from, err = x.tree(predecessor); err != nil {
			return nil, wrap(err, "failed to load predecessor tree")
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, from, to, nil)
	if err != nil {
		return nil, wrap(err, "failed to diff trees")
	}

	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return nil, wrap(err, "failed to build patch")
	}

	blobs := []*model.DiffBlob{}
	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			continue
		}

		body, err := renderBody(fp)
		if err != nil {
			return nil, wrap(err, "failed to encode file patch")
		}
		if body == "" || strings.HasPrefix(body, binarySentinel) {
			continue
		}

		src, dst := fp.Files()
		blobs = append(blobs, &model.DiffBlob{
			FileA: filePath(src),
			FileB: filePath(dst),
			Lines: strings.Split(strings.TrimSuffix(body, "\n"), "\n"),
		})
	}

	return blobs, nil
}

func (x *Repository) tree(sha types.CommitSHA) (*object.Tree, error) {
	c, err := x.repo.CommitObject(plumbing.NewHash(sha.String()))
	if err != nil {
		return nil, err
	}
	return c.Tree()
}

// renderBody encodes a single file patch and drops the header lines before the first
// hunk or binary notice
func renderBody(fp diff.FilePatch) (string, error) {
	var buf bytes.Buffer
	if err := diff.NewUnifiedEncoder(&buf, contextLines).Encode(filePatchSet{fp}); err != nil {
		return "", err
	}

	text := buf.String()
	for offset := 0; offset < len(text); {
		line := text[offset:]
		if strings.HasPrefix(line, hunkPrefix) || strings.HasPrefix(line, binarySentinel) {
			return line, nil
		}
		next := strings.IndexByte(line, '\n')
		if next < 0 {
			break
		}
		offset += next + 1
	}

	return "", nil
}

func filePath(f diff.File) *string {
	if f == nil {
		return nil
	}
	p := f.Path()
	return &p
}

type filePatchSet []diff.FilePatch

func (x filePatchSet) FilePatches() []diff.FilePatch { return x }
func (x filePatchSet) Message() string               { return "" }
