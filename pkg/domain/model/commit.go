package model

import (
	"crypto/md5" // #nosec G501 identity key only, not a security boundary
	"encoding/hex"
	"time"

	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// CommitRef is a commit as enumerated by the history walk, before any diff is computed
type CommitRef struct {
	ID        types.CommitSHA
	Timestamp time.Time
	Author    string
	Message   string
}

// CommitPair couples a commit with the one preceding it in the walked window. A nil
// Predecessor means the commit is diffed against the empty tree.
type CommitPair struct {
	Branch      types.BranchName
	Commit      CommitRef
	Predecessor *CommitRef
}

func (x CommitPair) PredecessorID() types.CommitSHA {
	if x.Predecessor == nil {
		return types.EmptyTreeSHA
	}
	return x.Predecessor.ID
}

func (x CommitPair) DiffHash() types.DiffHash {
	return NewDiffHash(x.Commit.ID, x.PredecessorID())
}

// NewDiffHash derives the identity of a change from the commit/predecessor ID pair. It
// does not look at diff bytes.
func NewDiffHash(commit, predecessor types.CommitSHA) types.DiffHash {
	sum := md5.Sum([]byte(commit.String() + predecessor.String())) // #nosec G401
	return types.DiffHash(hex.EncodeToString(sum[:]))
}

type Commit struct {
	ID            types.CommitSHA  `json:"commit"`
	Branch        types.BranchName `json:"branch"`
	Timestamp     time.Time        `json:"commit_time"`
	Author        string           `json:"author,omitempty"`
	Message       string           `json:"message,omitempty"`
	PredecessorID types.CommitSHA  `json:"predecessor"`
	DiffHash      types.DiffHash   `json:"diff_hash"`
	Blobs         []*DiffBlob      `json:"blob_diffs"`
}

func NewCommit(pair CommitPair, blobs []*DiffBlob) *Commit {
	return &Commit{
		ID:            pair.Commit.ID,
		Branch:        pair.Branch,
		Timestamp:     pair.Commit.Timestamp,
		Author:        pair.Commit.Author,
		Message:       pair.Commit.Message,
		PredecessorID: pair.PredecessorID(),
		DiffHash:      pair.DiffHash(),
		Blobs:         blobs,
	}
}

// WithBlobs returns a copy of the commit holding the given blobs
func (x *Commit) WithBlobs(blobs []*DiffBlob) *Commit {
	c := *x
	c.Blobs = blobs
	return &c
}

func (x *Commit) FindingCount() int {
	var n int
	for _, blob := range x.Blobs {
		n += len(blob.EntropyFindings) + len(blob.RegexFindings)
	}
	return n
}

// CommitTime renders the commit timestamp the way reports display it
func (x *Commit) CommitTime() string {
	return x.Timestamp.Format("2006-01-02 15:04:05")
}

type DiffBlob struct {
	FileA           *string   `json:"file_a"`
	FileB           *string   `json:"file_b"`
	Lines           []string  `json:"text"`
	EntropyFindings []Finding `json:"high_entropy_words"`
	RegexFindings   []Finding `json:"regexp_matches"`
}

// Path returns the post-change path, or the pre-change path for deletions
func (x *DiffBlob) Path() string {
	if x.FileB != nil {
		return *x.FileB
	}
	if x.FileA != nil {
		return *x.FileA
	}
	return ""
}

func (x *DiffBlob) WithEntropyFindings(findings []Finding) *DiffBlob {
	b := *x
	b.EntropyFindings = findings
	return &b
}

func (x *DiffBlob) WithRegexFindings(findings []Finding) *DiffBlob {
	b := *x
	b.RegexFindings = findings
	return &b
}

// SkippedCommit records a commit left out of a report because its diff could not be computed
type SkippedCommit struct {
	Branch        types.BranchName `json:"branch"`
	CommitID      types.CommitSHA  `json:"commit"`
	PredecessorID types.CommitSHA  `json:"predecessor"`
	Error         string           `json:"error"`
}
