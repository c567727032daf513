package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octoleak/pkg/domain/types"
	"github.com/m-mizutani/octoleak/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
)

type Git struct {
	workspace    string
	cloneTimeout time.Duration
	token        types.GitToken `masq:"secret"`
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Directory used for clones, reset before each clone (temporary directory if not specified)",
			Category:    "Git",
			Sources:     cli.EnvVars("OCTOLEAK_WORKSPACE"),
			Destination: &x.workspace,
		},
		&cli.DurationFlag{
			Name:        "clone-timeout",
			Usage:       "Deadline of cloning a repository",
			Category:    "Git",
			Value:       gitrepo.DefaultCloneTimeout,
			Sources:     cli.EnvVars("OCTOLEAK_CLONE_TIMEOUT"),
			Destination: &x.cloneTimeout,
		},
		&cli.StringFlag{
			Name:        "git-token",
			Usage:       "Token for HTTPS clone of private repositories",
			Category:    "Git",
			Sources:     cli.EnvVars("OCTOLEAK_GIT_TOKEN"),
			Destination: (*string)(&x.token),
		},
	}
}

func (x *Git) NewClient() *gitrepo.Client {
	return gitrepo.New(
		gitrepo.WithWorkspace(x.workspace),
		gitrepo.WithCloneTimeout(x.cloneTimeout),
		gitrepo.WithToken(x.token),
	)
}

func (x *Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("workspace", x.workspace),
		slog.Duration("cloneTimeout", x.cloneTimeout),
		slog.Int("token.len", len(x.token)),
	)
}
