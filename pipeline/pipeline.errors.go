package pipeline

import (
	"github.com/itsatony/go-cuserr"
)

const (
	errCodeFilter = "TEMPREN_FILTER"
	errCodeSort   = "TEMPREN_SORT"
	errCodeRun    = "TEMPREN_RUN"

	errMsgFilterCompile   = "filter expression failed to compile"
	errMsgSortCompile     = "sort expression failed to compile"
	errMsgInputNotFound   = "input directory doesn't exists"
	errMsgNameModeNesting = "name mode forbids directory components in the evaluated name"
)

// NewFilterCompileError wraps a glob/regex compile failure, naming the
// offending expression.
func NewFilterCompileError(expression string, cause error) error {
	return cuserr.WrapStdError(cause, errCodeFilter, errMsgFilterCompile).
		WithMetadata("expression", expression)
}

// NewSortCompileError wraps a sort key template failure.
func NewSortCompileError(expression string, cause error) error {
	return cuserr.WrapStdError(cause, errCodeSort, errMsgSortCompile).
		WithMetadata("expression", expression)
}

// NewInputNotFoundError is raised when the job's input directory does
// not exist. The wording is deliberately non-standard English, to
// match what every external caller of this tool already expects on
// stderr.
func NewInputNotFoundError(path string) error {
	return cuserr.NewNotFoundError("path", errMsgInputNotFound).
		WithMetadata("path", path)
}

// NewNameModeNestingError is raised when name mode evaluates a
// destination containing directory separators.
func NewNameModeNestingError(evaluated string) error {
	return cuserr.NewValidationError(errCodeRun, errMsgNameModeNesting).
		WithMetadata("evaluated", evaluated)
}

// Stage identifies which part of a job raised a JobError, so a
// caller (the CLI) can map it to an exit code without inspecting the
// wrapped error's own type.
type Stage int

const (
	// StageUsage covers bad invocation: a missing or nonexistent
	// input directory, or a glob/regex filter that does not compile.
	StageUsage Stage = iota
	// StageTemplate covers template parse, bind, template-filter and
	// sort compile, and per-file evaluation failures.
	StageTemplate
	// StageFilesystem covers gather and rename failures.
	StageFilesystem
)

// JobError wraps a job-ending failure with the Stage that produced
// it, so the CLI can translate it into the documented exit code
// without guessing from the error's text or type.
type JobError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *JobError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *JobError) Unwrap() error {
	return e.Err
}

func usageErr(err error) error {
	if err == nil {
		return nil
	}
	return &JobError{Stage: StageUsage, Err: err}
}

func templateErr(err error) error {
	if err == nil {
		return nil
	}
	return &JobError{Stage: StageTemplate, Err: err}
}

func filesystemErr(err error) error {
	if err == nil {
		return nil
	}
	return &JobError{Stage: StageFilesystem, Err: err}
}
