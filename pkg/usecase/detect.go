package usecase

import (
	"context"

	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/finder"
	"golang.org/x/sync/errgroup"
)

// applyDetectors returns new commits whose blobs carry the findings of both finders. The
// input commits and blobs are left untouched. A disabled (nil) finder yields empty findings.
func applyDetectors(ctx context.Context, commits []*model.Commit, entropy, regex finder.Finder, workers int) ([]*model.Commit, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*model.Commit, len(commits))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, commit := range commits {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			blobs := make([]*model.DiffBlob, len(commit.Blobs))
			for j, blob := range commit.Blobs {
				blobs[j] = blob.
					WithEntropyFindings(finder.FindAll(entropy, blob.Lines)).
					WithRegexFindings(finder.FindAll(regex, blob.Lines))
			}
			results[i] = commit.WithBlobs(blobs)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func detectFile(file *model.File, entropy, regex finder.Finder) *model.File {
	f := *file
	f.EntropyFindings = finder.FindAll(entropy, file.Lines)
	f.RegexFindings = finder.FindAll(regex, file.Lines)
	return &f
}
