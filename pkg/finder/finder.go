// Package finder holds the two secret detectors: a Shannon entropy scorer over runs of
// a character class, and a named regular expression rule set.
package finder

import "github.com/m-mizutani/octoleak/pkg/domain/model"

// Finder reports candidate secrets in a single line. lineNo is recorded in the findings
// as is. Implementations are stateless and safe for concurrent use.
type Finder interface {
	Find(lineNo int, line string) []model.Finding
}

// FindAll runs f over every line and concatenates the findings in line order
func FindAll(f Finder, lines []string) []model.Finding {
	findings := []model.Finding{}
	if f == nil {
		return findings
	}
	for i, line := range lines {
		findings = append(findings, f.Find(i, line)...)
	}
	return findings
}
