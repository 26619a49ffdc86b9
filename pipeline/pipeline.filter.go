// Package pipeline composes the file gatherer, filter/sort stages,
// evaluator, and renamer into a single rename job, and maps failures
// to the CLI's exit codes.
package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/nemerle/tempren"
)

// FilterKind selects how a Filter's expression is interpreted.
type FilterKind int

const (
	FilterGlob FilterKind = iota
	FilterRegex
	FilterTemplate
)

// Filter decides, per file, whether it stays in the candidate set.
// Invert flips the underlying predicate.
type Filter struct {
	Kind    FilterKind
	Invert  bool
	glob    glob.Glob
	regex   *regexp.Regexp
	pattern tempren.BoundPattern
}

// NewGlobFilter compiles a shell-glob filter matched against a file's
// basename.
func NewGlobFilter(expression string, invert bool) (*Filter, error) {
	compiled, err := glob.Compile(expression)
	if err != nil {
		return nil, NewFilterCompileError(expression, err)
	}
	return &Filter{Kind: FilterGlob, Invert: invert, glob: compiled}, nil
}

// NewRegexFilter compiles a regex filter full-matched against a
// file's basename.
func NewRegexFilter(expression string, invert bool) (*Filter, error) {
	compiled, err := regexp.Compile("^(?:" + expression + ")$")
	if err != nil {
		return nil, NewFilterCompileError(expression, err)
	}
	return &Filter{Kind: FilterRegex, Invert: invert, regex: compiled}, nil
}

// NewTemplateFilter parses and binds expression as a template whose
// evaluated output's truthiness (see evaluateTruthiness) decides
// inclusion.
func NewTemplateFilter(expression string, registry *tempren.Registry, invert bool, logger *zap.Logger) (*Filter, error) {
	pattern, bound, err := parseAndBind(expression, registry, logger)
	if err != nil {
		return nil, err
	}
	_ = pattern
	return &Filter{Kind: FilterTemplate, Invert: invert, pattern: bound}, nil
}

// Matches reports whether file passes this filter.
func (f *Filter) Matches(file *tempren.File) (bool, error) {
	var result bool
	var err error

	switch f.Kind {
	case FilterGlob:
		result = f.glob.Match(file.Basename())
	case FilterRegex:
		result = f.regex.MatchString(file.Basename())
	case FilterTemplate:
		result, err = f.matchesTemplate(file)
	}

	if err != nil {
		return false, err
	}
	if f.Invert {
		result = !result
	}
	return result, nil
}

func (f *Filter) matchesTemplate(file *tempren.File) (bool, error) {
	out, err := tempren.Evaluate(f.pattern, file)
	if err != nil {
		return false, err
	}
	return evaluateTruthiness(out), nil
}

// evaluateTruthiness interprets a template filter's evaluated output.
// Because the template grammar has no comparison operators, a filter
// expression like "%Size() < 50" evaluates to a plain concatenation
// (e.g. "10 < 50"); this is recognized as a numeric comparison and
// resolved arithmetically. Anything else falls back to a Python-like
// truthy/falsy reading of the resulting string.
func evaluateTruthiness(s string) bool {
	if result, ok := evaluateComparison(s); ok {
		return result
	}
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "", "0", "false", "False":
		return false
	default:
		return true
	}
}

var comparisonPattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*(<=|>=|==|!=|<|>)\s*(-?\d+(?:\.\d+)?)\s*$`)

func evaluateComparison(s string) (bool, bool) {
	m := comparisonPattern.FindStringSubmatch(s)
	if m == nil {
		return false, false
	}
	left, _ := strconv.ParseFloat(m[1], 64)
	right, _ := strconv.ParseFloat(m[3], 64)
	switch m[2] {
	case "<":
		return left < right, true
	case "<=":
		return left <= right, true
	case ">":
		return left > right, true
	case ">=":
		return left >= right, true
	case "==":
		return left == right, true
	case "!=":
		return left != right, true
	default:
		return false, false
	}
}

func parseAndBind(expression string, registry *tempren.Registry, logger *zap.Logger) (tempren.Pattern, tempren.BoundPattern, error) {
	pattern, err := tempren.Parse(expression, logger)
	if err != nil {
		return nil, nil, err
	}
	bound, err := registry.Bind(pattern)
	if err != nil {
		return nil, nil, err
	}
	return pattern, bound, nil
}

// ApplyFilter returns the subset of files that pass every filter in
// filters, preserving gather order.
func ApplyFilter(files []*tempren.File, filters []*Filter) ([]*tempren.File, error) {
	if len(filters) == 0 {
		return files, nil
	}

	var out []*tempren.File
	for _, file := range files {
		keep := true
		for _, f := range filters {
			matched, err := f.Matches(file)
			if err != nil {
				return nil, err
			}
			if !matched {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, file)
		}
	}
	return out, nil
}
