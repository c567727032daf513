package usecase

import (
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// dedupPairs keeps the first pair of each diff hash and preserves input order
func dedupPairs(pairs []model.CommitPair) []model.CommitPair {
	seen := make(map[types.DiffHash]struct{}, len(pairs))
	kept := make([]model.CommitPair, 0, len(pairs))

	for _, pair := range pairs {
		hash := pair.DiffHash()
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}
		kept = append(kept, pair)
	}

	return kept
}
