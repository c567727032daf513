package model

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// Finding is a single candidate secret. Start and End are byte offsets of Match in the
// scanned line; Line is the index of that line in its blob or file.
type Finding struct {
	Kind   types.FindingKind `json:"kind"`
	Match  string            `json:"match"`
	RuleID string            `json:"rule"`
	Score  float64           `json:"score,omitempty"`
	Line   int               `json:"line"`
	Start  int               `json:"start"`
	End    int               `json:"end"`
}

// Fingerprint identifies the matched text without carrying it
func (x Finding) Fingerprint() string {
	sum := sha256.Sum256([]byte(x.Match))
	return hex.EncodeToString(sum[:])
}
