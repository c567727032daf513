package finder

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

//go:embed rules/default.yaml
var defaultRules []byte

type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// RuleSet is an immutable, name-ordered list of compiled rules
type RuleSet struct {
	rules []Rule
}

// NewRuleSet compiles name → pattern pairs. Any malformed pattern fails the whole set.
func NewRuleSet(patterns map[string]string) (*RuleSet, error) {
	if len(patterns) == 0 {
		return nil, goerr.Wrap(types.ErrRuleConfig, "rule set is empty")
	}

	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	set := &RuleSet{rules: make([]Rule, 0, len(names))}
	for _, name := range names {
		pattern := patterns[name]
		if strings.TrimSpace(name) == "" {
			return nil, goerr.Wrap(types.ErrRuleConfig, "rule name is empty", goerr.V("pattern", pattern))
		}
		if pattern == "" {
			return nil, goerr.Wrap(types.ErrRuleConfig, "rule pattern is empty", goerr.V("name", name))
		}

		ptn, err := regexp.Compile(pattern)
		if err != nil {
			return nil, goerr.Wrap(types.ErrRuleConfig, "malformed rule pattern",
				goerr.V("name", name),
				goerr.V("pattern", pattern),
				goerr.V("cause", err.Error()),
			)
		}
		set.rules = append(set.rules, Rule{Name: name, Pattern: ptn})
	}

	return set, nil
}

// DefaultRules returns the rule set bundled with the binary
func DefaultRules() (*RuleSet, error) {
	return ParseRules(defaultRules, ".yaml")
}

// LoadRules reads a rule file, or returns the bundled rules when path is empty. Files
// ending in .json are decoded as JSON, everything else as YAML.
func LoadRules(path string) (*RuleSet, error) {
	if path == "" {
		return DefaultRules()
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(types.ErrRuleConfig, "failed to read rule file", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	set, err := ParseRules(raw, filepath.Ext(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load rule file", goerr.V("path", path))
	}
	return set, nil
}

func ParseRules(raw []byte, ext string) (*RuleSet, error) {
	patterns := map[string]string{}

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(raw, &patterns); err != nil {
			return nil, goerr.Wrap(types.ErrRuleConfig, "failed to decode JSON rules", goerr.V("cause", err.Error()))
		}
	default:
		if err := yaml.Unmarshal(raw, &patterns); err != nil {
			return nil, goerr.Wrap(types.ErrRuleConfig, "failed to decode YAML rules", goerr.V("cause", err.Error()))
		}
	}

	return NewRuleSet(patterns)
}

func (x *RuleSet) Rules() []Rule {
	rules := make([]Rule, len(x.rules))
	copy(rules, x.rules)
	return rules
}

func (x *RuleSet) Len() int {
	return len(x.rules)
}
