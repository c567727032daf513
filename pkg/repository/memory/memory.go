package memory

import (
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

// New creates a new in-memory repository
func New() interfaces.ScanRepository {
	return &scanRepository{
		scans: make(map[string]*model.ScanRecord),
	}
}
