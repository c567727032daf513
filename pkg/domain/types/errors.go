package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrRepositoryAccess covers clone, fetch and ref/commit enumeration failures. Fatal for the target.
	ErrRepositoryAccess = goerr.New("repository access error")

	// ErrDiffComputation is raised when a diff between a commit and its predecessor cannot be computed.
	ErrDiffComputation = goerr.New("diff computation error")

	// ErrRuleConfig is raised when a rule set file is unreadable or contains a malformed pattern.
	ErrRuleConfig = goerr.New("rule config error")

	// ErrInputClassification is raised when an input is neither a remote repository nor a local path.
	ErrInputClassification = goerr.New("input not supported")

	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
)
