package finder

import (
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

type RegexFinder struct {
	rules *RuleSet
}

var _ Finder = (*RegexFinder)(nil)

func NewRegexFinder(rules *RuleSet) *RegexFinder {
	return &RegexFinder{rules: rules}
}

func (x *RegexFinder) Find(lineNo int, line string) []model.Finding {
	var findings []model.Finding

	for _, rule := range x.rules.rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(line, -1) {
			findings = append(findings, model.Finding{
				Kind:   types.FindingRegex,
				Match:  line[loc[0]:loc[1]],
				RuleID: rule.Name,
				Line:   lineNo,
				Start:  loc[0],
				End:    loc[1],
			})
		}
	}

	return findings
}
