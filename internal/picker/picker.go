// Package picker runs the collect-then-select pipeline.
package picker

import (
	"github.com/taigrr/randpick/internal/collector"
	"github.com/taigrr/randpick/internal/pathfilter"
	"github.com/taigrr/randpick/internal/selector"
	"github.com/taigrr/randpick/internal/types"
	"github.com/taigrr/randpick/internal/uri"
)

// Picker chooses a random file under a directory tree.
type Picker struct {
	selector *selector.Selector
}

// New creates a Picker. A nil selector uses the default random source.
func New(sel *selector.Selector) *Picker {
	if sel == nil {
		sel = selector.New(nil)
	}
	return &Picker{selector: sel}
}

// Pick walks root and selects one matching file. A walk failure is returned
// as an error; an empty match set is a result with Found set to false.
func (p *Picker) Pick(root string, filter *pathfilter.Filter) (types.PickResult, error) {
	files, err := collector.Collect(root, filter)
	if err != nil {
		return types.PickResult{}, err
	}

	result := types.PickResult{
		Candidates: len(files),
		Extensions: filter.Extensions(),
	}

	path, ok := p.selector.Select(files)
	if !ok {
		return result, nil
	}

	result.Found = true
	result.Path = path
	result.URI = uri.GenerateFileURI(path)
	return result, nil
}

// RandomPick returns a file chosen uniformly from the files under root that
// pass filter. It reports false when nothing matched.
func RandomPick(root string, filter *pathfilter.Filter) (string, bool, error) {
	result, err := New(nil).Pick(root, filter)
	if err != nil {
		return "", false, err
	}
	return result.Path, result.Found, nil
}
