package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
}

func TestSentryNotConfigured(t *testing.T) {
	var sentryConfig config.Sentry
	parseFlags(t, sentryConfig.Flags())

	ctx := context.Background()
	gt.NoError(t, sentryConfig.Configure(ctx))
	// no DSN, nothing to wait for
	sentryConfig.Flush(ctx)
}
