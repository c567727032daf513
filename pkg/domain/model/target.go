package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/types"
)

var (
	ptnRemoteRepository = regexp.MustCompile(`^((git|ssh|http(s)?)|(git@[\w\.]+))(:(//)?)([\w\.@\:/\-~]+)(\.git)(/)?`)
	ptnLocalFile        = regexp.MustCompile(`^[\w\-\. /]+$`)
)

type Target struct {
	Kind  types.TargetKind `json:"kind"`
	Value string           `json:"value"`
}

// ClassifyTarget decides whether an input names a remote repository or a local file.
// Remote syntax wins when both match.
func ClassifyTarget(input string) (*Target, error) {
	switch {
	case ptnRemoteRepository.MatchString(input):
		return &Target{Kind: types.TargetRepository, Value: input}, nil
	case ptnLocalFile.MatchString(input):
		return &Target{Kind: types.TargetFile, Value: input}, nil
	default:
		return nil, goerr.Wrap(types.ErrInputClassification, "neither a remote repository nor a local file", goerr.V("input", input))
	}
}
