package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// Report is the outcome of scanning one input. Exactly one of Commits (repository) or
// File (local file) is populated, depending on Target.Kind.
type Report struct {
	ScanID    types.ScanID    `json:"scan_id"`
	Timestamp time.Time       `json:"timestamp"`
	Target    Target          `json:"target"`
	Commits   []*Commit       `json:"commits,omitempty"`
	Skipped   []SkippedCommit `json:"skipped,omitempty"`
	File      *File           `json:"file,omitempty"`
}

func (x *Report) FindingCount() int {
	var n int
	for _, c := range x.Commits {
		n += c.FindingCount()
	}
	if x.File != nil {
		n += x.File.FindingCount()
	}
	return n
}

// ScanRecord is the persisted summary of a Report. It keeps fingerprints of matches
// instead of the matched secrets.
type ScanRecord struct {
	ID          types.ScanID     `bigquery:"id" json:"id" firestore:"id"`
	Timestamp   time.Time        `bigquery:"timestamp" json:"timestamp" firestore:"timestamp"`
	Target      string           `bigquery:"target" json:"target" firestore:"target"`
	Kind        types.TargetKind `bigquery:"kind" json:"kind" firestore:"kind"`
	CommitCount int              `bigquery:"commit_count" json:"commit_count" firestore:"commit_count"`
	Skipped     int              `bigquery:"skipped" json:"skipped" firestore:"skipped"`
	Findings    []FindingRecord  `bigquery:"findings" json:"findings" firestore:"findings"`
}

type ScanRawRecord struct {
	ScanRecord
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

type FindingRecord struct {
	Branch      string  `bigquery:"branch" json:"branch" firestore:"branch"`
	CommitID    string  `bigquery:"commit_id" json:"commit_id" firestore:"commit_id"`
	CommitTime  string  `bigquery:"commit_time" json:"commit_time" firestore:"commit_time"`
	Path        string  `bigquery:"path" json:"path" firestore:"path"`
	Kind        string  `bigquery:"kind" json:"kind" firestore:"kind"`
	RuleID      string  `bigquery:"rule_id" json:"rule_id" firestore:"rule_id"`
	Score       float64 `bigquery:"score" json:"score" firestore:"score"`
	Line        int     `bigquery:"line" json:"line" firestore:"line"`
	Fingerprint string  `bigquery:"fingerprint" json:"fingerprint" firestore:"fingerprint"`
}

// NewScanRecord flattens a report into the persisted form
func NewScanRecord(report *Report) *ScanRecord {
	rec := &ScanRecord{
		ID:          report.ScanID,
		Timestamp:   report.Timestamp,
		Target:      report.Target.Value,
		Kind:        report.Target.Kind,
		CommitCount: len(report.Commits),
		Skipped:     len(report.Skipped),
		Findings:    []FindingRecord{},
	}

	for _, commit := range report.Commits {
		for _, blob := range commit.Blobs {
			for _, findings := range [][]Finding{blob.EntropyFindings, blob.RegexFindings} {
				for _, f := range findings {
					rec.Findings = append(rec.Findings, FindingRecord{
						Branch:      commit.Branch.String(),
						CommitID:    commit.ID.String(),
						CommitTime:  commit.CommitTime(),
						Path:        blob.Path(),
						Kind:        string(f.Kind),
						RuleID:      f.RuleID,
						Score:       f.Score,
						Line:        f.Line,
						Fingerprint: f.Fingerprint(),
					})
				}
			}
		}
	}

	if report.File != nil {
		for _, findings := range [][]Finding{report.File.EntropyFindings, report.File.RegexFindings} {
			for _, f := range findings {
				rec.Findings = append(rec.Findings, FindingRecord{
					Path:        report.File.Path,
					Kind:        string(f.Kind),
					RuleID:      f.RuleID,
					Score:       f.Score,
					Line:        f.Line,
					Fingerprint: f.Fingerprint(),
				})
			}
		}
	}

	return rec
}

// ScanResult is the outcome of one input of a multi-target scan. Err is set instead of
// Report when the input failed.
type ScanResult struct {
	Input  string  `json:"input"`
	Report *Report `json:"report,omitempty"`
	Err    error   `json:"-"`
}

func (x *ScanResult) MarshalJSON() ([]byte, error) {
	type alias ScanResult
	var errMsg string
	if x.Err != nil {
		errMsg = x.Err.Error()
	}
	return json.Marshal(struct {
		*alias
		Error string `json:"error,omitempty"`
	}{alias: (*alias)(x), Error: errMsg})
}
