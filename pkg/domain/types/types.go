package types

import (
	"github.com/google/uuid"
)

type (
	BranchName  string
	CommitSHA   string
	DiffHash    string
	FindingKind string
	MimeClass   string
	TargetKind  string
)

const (
	FindingEntropy FindingKind = "entropy"
	FindingRegex   FindingKind = "regex"
)

const (
	MimeBinaryFile MimeClass = "binary-file"
	MimeNotAFile   MimeClass = "not-a-file"
)

const (
	TargetRepository TargetKind = "repository"
	TargetFile       TargetKind = "file"
)

// EmptyTreeSHA is the object ID git assigns to a tree with no entries. It stands in
// for the predecessor of the oldest commit of a walked window.
const EmptyTreeSHA CommitSHA = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

func (x BranchName) String() string { return string(x) }
func (x CommitSHA) String() string  { return string(x) }
func (x DiffHash) String() string   { return string(x) }

// Short returns the abbreviated form of the commit ID used in human readable output
func (x CommitSHA) Short() string {
	if len(x) > 8 {
		return string(x[:8])
	}
	return string(x)
}

type ScanID string

func NewScanID() ScanID {
	return ScanID(uuid.NewString())
}

func (x ScanID) String() string { return string(x) }

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	FirestoreDBID   string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x FirestoreDBID) String() string   { return string(x) }
