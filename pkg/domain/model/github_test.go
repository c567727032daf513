package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

func TestScanGitHubRepoInputValidate(t *testing.T) {
	valid := func() *model.ScanGitHubRepoInput {
		return &model.ScanGitHubRepoInput{
			Owner:     "test-owner",
			RepoName:  "test-repo",
			CloneURL:  "https://github.com/test-owner/test-repo.git",
			Branch:    "main",
			InstallID: 456,
		}
	}

	t.Run("valid input passes validation", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("missing owner fails validation", func(t *testing.T) {
		input := valid()
		input.Owner = ""
		gt.Error(t, input.Validate())
	})

	t.Run("missing repo name fails validation", func(t *testing.T) {
		input := valid()
		input.RepoName = ""
		gt.Error(t, input.Validate())
	})

	t.Run("missing clone URL fails validation", func(t *testing.T) {
		input := valid()
		input.CloneURL = ""
		gt.Error(t, input.Validate())
	})

	t.Run("missing install ID fails validation", func(t *testing.T) {
		input := valid()
		input.InstallID = 0
		gt.Error(t, input.Validate())
	})
}

func TestScanGitHubOwnerInputValidate(t *testing.T) {
	gt.NoError(t, (&model.ScanGitHubOwnerInput{Owner: "blue"}).Validate())
	gt.Error(t, (&model.ScanGitHubOwnerInput{InstallID: 1}).Validate())
}
