package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

// ScanGitHubRepoInput is a history scan requested by a GitHub App event
type ScanGitHubRepoInput struct {
	Owner     string
	RepoName  string
	CloneURL  string
	Branch    string
	CommitID  string
	InstallID types.GitHubAppInstallID
}

func (x *ScanGitHubRepoInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	if x.CloneURL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "clone URL is empty", goerr.V("owner", x.Owner), goerr.V("repo", x.RepoName))
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "install ID is empty")
	}
	return nil
}

// GitHubAPIRepository is a repository visible to a GitHub App installation
type GitHubAPIRepository struct {
	Owner         string
	Name          string
	CloneURL      string
	DefaultBranch string
	Archived      bool
	Disabled      bool
}

// ScanGitHubOwnerInput asks for a history scan of every repository of an owner that the
// GitHub App installation can see. InstallID is looked up when zero.
type ScanGitHubOwnerInput struct {
	Owner     string
	InstallID types.GitHubAppInstallID
}

func (x *ScanGitHubOwnerInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	return nil
}
