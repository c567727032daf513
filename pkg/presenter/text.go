package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

var (
	colorHeader  = color.New(color.FgCyan, color.Bold)
	colorKey     = color.New(color.FgGreen)
	colorMatch   = color.New(color.FgYellow, color.Bold)
	colorFailure = color.New(color.FgRed)
)

// TextWriter writes findings in a human readable form. Only commits and files having
// findings are printed.
type TextWriter struct{}

func (x *TextWriter) Write(w io.Writer, results []*model.ScanResult) error {
	ew := &errWriter{w: w}

	for _, res := range results {
		ew.printf("%s\n", colorHeader.Sprint("~~~~~~~~~~~~~~~~~~~~~ "+res.Input))

		if res.Err != nil {
			ew.printf("%s %s\n\n", colorFailure.Sprint("Failed:"), res.Err.Error())
			continue
		}

		report := res.Report
		for _, commit := range report.Commits {
			writeCommit(ew, commit)
		}
		if report.File != nil {
			writeFile(ew, report.File)
		}
		for _, skipped := range report.Skipped {
			ew.printf("%s %s (%s): %s\n",
				colorFailure.Sprint("Skipped:"), skipped.CommitID.Short(), skipped.Branch, skipped.Error)
		}

		ew.printf("Findings: %d\n\n", report.FindingCount())
	}

	return ew.err
}

func writeCommit(ew *errWriter, commit *model.Commit) {
	if commit.FindingCount() == 0 {
		return
	}

	ew.printf("%s %s\n", colorKey.Sprint("Date:"), commit.CommitTime())
	ew.printf("%s %s\n", colorKey.Sprint("Hash:"), commit.ID)
	ew.printf("%s %s\n", colorKey.Sprint("Branch:"), commit.Branch)
	ew.printf("%s %s\n", colorKey.Sprint("Commit:"), strings.TrimSpace(commit.Message))

	for _, blob := range commit.Blobs {
		findings := append(append([]model.Finding{}, blob.EntropyFindings...), blob.RegexFindings...)
		if len(findings) == 0 {
			continue
		}
		ew.printf("%s %s\n", colorKey.Sprint("File:"), blob.Path())
		writeFindings(ew, blob.Lines, findings)
	}
	ew.println("")
}

func writeFile(ew *errWriter, file *model.File) {
	ew.printf("%s %s (%s)\n", colorKey.Sprint("File:"), file.Path, file.MimeType)

	findings := append(append([]model.Finding{}, file.EntropyFindings...), file.RegexFindings...)
	writeFindings(ew, file.Lines, findings)
}

// writeFindings prints each line having findings once, with every match highlighted
func writeFindings(ew *errWriter, lines []string, findings []model.Finding) {
	byLine := map[int][]model.Finding{}
	var lineNos []int
	for _, f := range findings {
		if _, ok := byLine[f.Line]; !ok {
			lineNos = append(lineNos, f.Line)
		}
		byLine[f.Line] = append(byLine[f.Line], f)
	}
	sort.Ints(lineNos)

	for _, n := range lineNos {
		rules := make([]string, 0, len(byLine[n]))
		for _, f := range byLine[n] {
			rules = append(rules, f.RuleID)
		}

		text := ""
		if n >= 0 && n < len(lines) {
			text = highlight(lines[n], byLine[n])
		}
		ew.printf("  L%d [%s] %s\n", n+1, strings.Join(rules, ", "), text)
	}
}

// highlight colors the matched spans of a line. Overlapping spans are merged.
func highlight(line string, findings []model.Finding) string {
	spans := make([][2]int, 0, len(findings))
	for _, f := range findings {
		if f.Start < 0 || f.End > len(line) || f.Start >= f.End {
			continue
		}
		spans = append(spans, [2]int{f.Start, f.End})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s[1] <= pos {
			continue
		}
		if s[0] < pos {
			s[0] = pos
		}
		b.WriteString(line[pos:s[0]])
		b.WriteString(colorMatch.Sprint(line[s[0]:s[1]]))
		pos = s[1]
	}
	b.WriteString(line[pos:])
	return b.String()
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
