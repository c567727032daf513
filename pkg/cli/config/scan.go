package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/finder"
	"github.com/m-mizutani/octoleak/pkg/presenter"
	"github.com/m-mizutani/octoleak/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Scan holds detector and output settings shared by every scanning command
type Scan struct {
	maxDepth  int64
	workers   int64
	entropy   bool
	regex     bool
	rulesPath string
	json      bool

	base64Threshold float64
	base64MinLength int64
	hexThreshold    float64
	hexMinLength    int64
}

func (x *Scan) Flags() []cli.Flag {
	base64, hex := finder.Base64Class(), finder.HexClass()

	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "max-depth",
			Usage:       "Max number of commits walked per branch",
			Category:    "Scan",
			Value:       usecase.DefaultMaxDepth,
			Sources:     cli.EnvVars("OCTOLEAK_MAX_DEPTH"),
			Destination: &x.maxDepth,
		},
		&cli.Int64Flag{
			Name:        "workers",
			Usage:       "Number of commits inspected by detectors in parallel",
			Category:    "Scan",
			Value:       usecase.DefaultWorkers,
			Sources:     cli.EnvVars("OCTOLEAK_WORKERS"),
			Destination: &x.workers,
		},
		&cli.BoolFlag{
			Name:        "entropy",
			Usage:       "Enable high entropy string detection",
			Category:    "Scan",
			Value:       true,
			Sources:     cli.EnvVars("OCTOLEAK_ENTROPY"),
			Destination: &x.entropy,
		},
		&cli.BoolFlag{
			Name:        "regex",
			Usage:       "Enable rule based detection",
			Category:    "Scan",
			Sources:     cli.EnvVars("OCTOLEAK_REGEX"),
			Destination: &x.regex,
		},
		&cli.StringFlag{
			Name:        "rules",
			Usage:       "Path to rule set file (YAML or JSON), built-in rules if not specified",
			Category:    "Scan",
			Sources:     cli.EnvVars("OCTOLEAK_RULES"),
			Destination: &x.rulesPath,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Output results as JSON",
			Category:    "Scan",
			Sources:     cli.EnvVars("OCTOLEAK_JSON"),
			Destination: &x.json,
		},
		&cli.FloatFlag{
			Name:        "base64-threshold",
			Usage:       "Entropy above which a base64 run is reported",
			Category:    "Entropy",
			Value:       base64.Threshold,
			Destination: &x.base64Threshold,
		},
		&cli.Int64Flag{
			Name:        "base64-min-length",
			Usage:       "Min length of a scored base64 run",
			Category:    "Entropy",
			Value:       int64(base64.MinLength),
			Destination: &x.base64MinLength,
		},
		&cli.FloatFlag{
			Name:        "hex-threshold",
			Usage:       "Entropy above which a hex run is reported",
			Category:    "Entropy",
			Value:       hex.Threshold,
			Destination: &x.hexThreshold,
		},
		&cli.Int64Flag{
			Name:        "hex-min-length",
			Usage:       "Min length of a scored hex run",
			Category:    "Entropy",
			Value:       int64(hex.MinLength),
			Destination: &x.hexMinLength,
		},
	}
}

func (x *Scan) Format() string {
	if x.json {
		return presenter.FormatJSON
	}
	return presenter.FormatText
}

// UseCaseOptions builds the enabled finders and walk settings
func (x *Scan) UseCaseOptions() ([]usecase.Option, error) {
	if x.maxDepth <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max depth must be positive", goerr.V("max_depth", x.maxDepth))
	}
	if x.workers <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "workers must be positive", goerr.V("workers", x.workers))
	}

	options := []usecase.Option{
		usecase.WithMaxDepth(int(x.maxDepth)),
		usecase.WithWorkers(int(x.workers)),
	}

	if x.entropy {
		base64, hex := finder.Base64Class(), finder.HexClass()
		base64.Threshold, base64.MinLength = x.base64Threshold, int(x.base64MinLength)
		hex.Threshold, hex.MinLength = x.hexThreshold, int(x.hexMinLength)

		entropy, err := finder.NewEntropyFinder(base64, hex)
		if err != nil {
			return nil, err
		}
		options = append(options, usecase.WithEntropyFinder(entropy))
	}

	if x.regex {
		rules, err := finder.LoadRules(x.rulesPath)
		if err != nil {
			return nil, err
		}
		options = append(options, usecase.WithRegexFinder(finder.NewRegexFinder(rules)))
	}

	return options, nil
}

func (x *Scan) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("maxDepth", x.maxDepth),
		slog.Int64("workers", x.workers),
		slog.Bool("entropy", x.entropy),
		slog.Bool("regex", x.regex),
		slog.String("rules", x.rulesPath),
		slog.Bool("json", x.json),
	)
}
