package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

// GitHubApp holds the credential of the GitHub App. The app is optional for serve, where
// it only backs the webhook, and required for scan-github.
type GitHubApp struct {
	id         types.GitHubAppID
	secret     types.GitHubAppSecret     `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("OCTOLEAK_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("OCTOLEAK_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret, webhook endpoint is disabled if empty",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("OCTOLEAK_GITHUB_APP_SECRET"),
		},
	}
}

func (x *GitHubApp) Enabled() bool {
	return x.id != 0 || x.privateKey != ""
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	if x.id == 0 || x.privateKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "both of GitHub App ID and private key are required",
			goerr.V("id", x.id),
			goerr.V("privateKey.len", len(x.privateKey)),
		)
	}
	return ghapp.New(x.id, x.privateKey)
}

func (x *GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

func (x *GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
