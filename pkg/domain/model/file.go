package model

import "github.com/m-mizutani/octoleak/pkg/domain/types"

type File struct {
	Path            string    `json:"path"`
	MimeType        string    `json:"mime_type"`
	Lines           []string  `json:"text"`
	EntropyFindings []Finding `json:"high_entropy_words"`
	RegexFindings   []Finding `json:"regexp_matches"`
}

// NewUnscannableFile returns the record for a path whose content is not scanned
func NewUnscannableFile(path string, class types.MimeClass) *File {
	return &File{
		Path:            path,
		MimeType:        string(class),
		Lines:           []string{},
		EntropyFindings: []Finding{},
		RegexFindings:   []Finding{},
	}
}

func (x *File) FindingCount() int {
	return len(x.EntropyFindings) + len(x.RegexFindings)
}
