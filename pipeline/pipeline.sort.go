package pipeline

import (
	"regexp"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/nemerle/tempren"
)

// Sorter orders a file list by a template-evaluated key, with a
// numeric comparison when every key looks like a number and a plain
// string comparison otherwise.
type Sorter struct {
	pattern tempren.BoundPattern
	invert  bool
}

// NewSorter parses and binds expression as the sort-key template.
func NewSorter(expression string, registry *tempren.Registry, invert bool, logger *zap.Logger) (*Sorter, error) {
	pattern, err := tempren.Parse(expression, logger)
	if err != nil {
		return nil, err
	}
	bound, err := registry.Bind(pattern)
	if err != nil {
		return nil, err
	}
	return &Sorter{pattern: bound, invert: invert}, nil
}

var numericKeyPattern = regexp.MustCompile(`^-?\d+$`)

// Sort reorders files in place by their evaluated sort key, stably,
// then reverses the whole ordering when invert is set — rather than
// flipping the comparator — so the inverted result is the exact reverse
// of the ascending one, ties included.
func (s *Sorter) Sort(files []*tempren.File) error {
	keys := make([]string, len(files))
	allNumeric := true
	for i, f := range files {
		key, err := tempren.Evaluate(s.pattern, f)
		if err != nil {
			return err
		}
		keys[i] = key
		if allNumeric && !numericKeyPattern.MatchString(key) {
			allNumeric = false
		}
	}

	indices := make([]int, len(files))
	for i := range indices {
		indices[i] = i
	}

	if allNumeric && len(files) > 0 {
		numbers := make([]int64, len(keys))
		for i, k := range keys {
			numbers[i], _ = strconv.ParseInt(k, 10, 64)
		}
		sort.SliceStable(indices, func(a, b int) bool {
			return numbers[indices[a]] < numbers[indices[b]]
		})
	} else {
		sort.SliceStable(indices, func(a, b int) bool {
			return keys[indices[a]] < keys[indices[b]]
		})
	}

	ordered := make([]*tempren.File, len(files))
	for i, idx := range indices {
		ordered[i] = files[idx]
	}
	if s.invert {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	copy(files, ordered)
	return nil
}
