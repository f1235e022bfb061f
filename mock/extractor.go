package mock

import (
	"github.com/fwojciec/webstruct"
)

var _ webstruct.StructureExtractor = (*StructureExtractor)(nil)

// StructureExtractor is a mock implementation of webstruct.StructureExtractor.
type StructureExtractor struct {
	ExtractFn func(html string) (*webstruct.PageStructure, error)
}

func (e *StructureExtractor) Extract(html string) (*webstruct.PageStructure, error) {
	return e.ExtractFn(html)
}
