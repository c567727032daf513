package finder

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

const (
	Base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	HexChars    = "1234567890abcdefABCDEF"
)

// CharClass is one candidate alphabet. Runs of at least MinLength characters drawn from
// Alphabet are flagged when their entropy is strictly above Threshold.
type CharClass struct {
	ID        string
	Alphabet  string
	MinLength int
	Threshold float64
}

func (x CharClass) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "char class ID is empty")
	}
	if x.Alphabet == "" {
		return goerr.Wrap(types.ErrInvalidOption, "char class alphabet is empty", goerr.V("id", x.ID))
	}
	if x.MinLength < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "char class min length must be positive", goerr.V("id", x.ID), goerr.V("min_length", x.MinLength))
	}
	if x.Threshold < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "char class threshold must not be negative", goerr.V("id", x.ID), goerr.V("threshold", x.Threshold))
	}
	return nil
}

func Base64Class() CharClass {
	return CharClass{ID: "base64", Alphabet: Base64Chars, MinLength: 20, Threshold: 4.5}
}

func HexClass() CharClass {
	return CharClass{ID: "hex", Alphabet: HexChars, MinLength: 40, Threshold: 3.0}
}

func DefaultCharClasses() []CharClass {
	return []CharClass{Base64Class(), HexClass()}
}

type charClass struct {
	CharClass
	member [256]bool
}

type EntropyFinder struct {
	classes []charClass
}

var _ Finder = (*EntropyFinder)(nil)

// NewEntropyFinder builds a finder over the given classes, or the default base64 and hex
// classes when none are given.
func NewEntropyFinder(classes ...CharClass) (*EntropyFinder, error) {
	if len(classes) == 0 {
		classes = DefaultCharClasses()
	}

	finder := &EntropyFinder{}
	for _, c := range classes {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		cc := charClass{CharClass: c}
		for i := 0; i < len(c.Alphabet); i++ {
			cc.member[c.Alphabet[i]] = true
		}
		finder.classes = append(finder.classes, cc)
	}

	return finder, nil
}

func (x *EntropyFinder) Find(lineNo int, line string) []model.Finding {
	var findings []model.Finding

	for _, class := range x.classes {
		for _, run := range class.runs(line) {
			text := line[run[0]:run[1]]
			score := ShannonEntropy(text)
			if score <= class.Threshold {
				continue
			}

			findings = append(findings, model.Finding{
				Kind:   types.FindingEntropy,
				Match:  text,
				RuleID: class.ID,
				Score:  score,
				Line:   lineNo,
				Start:  run[0],
				End:    run[1],
			})
		}
	}

	return findings
}

// runs returns [start, end) offsets of maximal runs of class members long enough to score
func (x *charClass) runs(line string) [][2]int {
	var runs [][2]int
	start := -1

	for i := 0; i <= len(line); i++ {
		if i < len(line) && x.member[line[i]] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= x.MinLength {
			runs = append(runs, [2]int{start, i})
		}
		start = -1
	}

	return runs
}

// ShannonEntropy returns the entropy of s in bits per byte. An empty string scores 0.
func ShannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	n := float64(len(s))
	var entropy float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}

	return entropy
}
