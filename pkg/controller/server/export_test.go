package server

import "github.com/m-mizutani/octoleak/pkg/domain/model"

func RefToBranchForTest(v string) string {
	return refToBranch(v)
}

func GithubEventToScanInputForTest(event interface{}) *model.ScanGitHubRepoInput {
	return githubEventToScanInput(event)
}
