package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nemerle/tempren"
	"github.com/nemerle/tempren/filesystem"
)

// Mode selects how an evaluated template output is interpreted as a
// destination path.
type Mode int

const (
	// ModeName forbids directory separators in the evaluated output:
	// the file is renamed in place, never moved.
	ModeName Mode = iota
	// ModePath treats the evaluated output as a path relative to the
	// input directory, creating intermediate directories as needed.
	ModePath
)

// Options configures a single rename job.
type Options struct {
	Template      string
	InputDir      string
	Recursive     bool
	IncludeHidden bool
	DryRun        bool
	Override      bool
	Mode          Mode

	FilterExpr   string
	FilterKind   FilterKind
	FilterInvert bool

	SortExpr   string
	SortInvert bool

	Logger *zap.Logger
}

// RenameResult records the outcome of one file's rename attempt.
type RenameResult struct {
	Src string
	Dst string
	Err error
}

// Result is the outcome of a full job run.
type Result struct {
	Renamed []RenameResult
}

// Run executes one gather -> filter -> sort -> evaluate -> rename job.
// A job-level error (bad template, missing input directory, filter or
// sort compile failure) aborts before touching any file. Per-file
// rename failures are fatal in live mode and merely recorded in
// dry-run mode, matching a dry run's purpose of surfacing every
// problem in one pass.
func Run(opts Options, registry *tempren.Registry) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(opts.InputDir)
	if err != nil || !info.IsDir() {
		return nil, usageErr(NewInputNotFoundError(opts.InputDir))
	}

	pattern, err := tempren.Parse(opts.Template, logger)
	if err != nil {
		return nil, templateErr(err)
	}
	bound, err := registry.Bind(pattern)
	if err != nil {
		return nil, templateErr(err)
	}

	var gatherer filesystem.FileGatherer
	if opts.Recursive {
		gatherer = &filesystem.RecursiveFileGatherer{IncludeHidden: opts.IncludeHidden}
	} else {
		gatherer = &filesystem.FlatFileGatherer{IncludeHidden: opts.IncludeHidden}
	}
	files, err := gatherer.GatherIn(opts.InputDir)
	if err != nil {
		return nil, filesystemErr(err)
	}

	filters, err := buildFilters(opts, registry, logger)
	if err != nil {
		return nil, err
	}
	files, err = ApplyFilter(files, filters)
	if err != nil {
		return nil, templateErr(err)
	}

	if opts.SortExpr != "" {
		sorter, err := NewSorter(opts.SortExpr, registry, opts.SortInvert, logger)
		if err != nil {
			return nil, templateErr(err)
		}
		if err := sorter.Sort(files); err != nil {
			return nil, templateErr(err)
		}
	}

	renamer := selectRenamer(opts)

	result := &Result{}
	for _, f := range files {
		res, fatal, stage := renameOne(bound, f, opts, renamer)
		result.Renamed = append(result.Renamed, res)
		if fatal {
			if stage == StageTemplate {
				return result, templateErr(res.Err)
			}
			return result, filesystemErr(res.Err)
		}
	}
	return result, nil
}

func buildFilters(opts Options, registry *tempren.Registry, logger *zap.Logger) ([]*Filter, error) {
	if opts.FilterExpr == "" {
		return nil, nil
	}

	var f *Filter
	var err error
	switch opts.FilterKind {
	case FilterRegex:
		f, err = NewRegexFilter(opts.FilterExpr, opts.FilterInvert)
		if err != nil {
			return nil, usageErr(err)
		}
	case FilterTemplate:
		f, err = NewTemplateFilter(opts.FilterExpr, registry, opts.FilterInvert, logger)
		if err != nil {
			return nil, templateErr(err)
		}
	default:
		f, err = NewGlobFilter(opts.FilterExpr, opts.FilterInvert)
		if err != nil {
			return nil, usageErr(err)
		}
	}
	return []*Filter{f}, nil
}

func selectRenamer(opts Options) filesystem.Renamer {
	if opts.DryRun {
		return filesystem.NewDryRunRenamer()
	}
	if opts.Mode == ModePath {
		return filesystem.FileMover{}
	}
	return filesystem.FileRenamer{}
}

func renameOne(bound tempren.BoundPattern, f *tempren.File, opts Options, renamer filesystem.Renamer) (result RenameResult, fatal bool, stage Stage) {
	src := f.AbsolutePath()

	evaluated, err := tempren.Evaluate(bound, f)
	if err != nil {
		return RenameResult{Src: src, Err: err}, !opts.DryRun, StageTemplate
	}

	if opts.Mode == ModeName && strings.ContainsAny(evaluated, `/\`) {
		err := NewNameModeNestingError(evaluated)
		return RenameResult{Src: src, Err: err}, !opts.DryRun, StageTemplate
	}

	dst := destinationFor(f, evaluated, opts.Mode)
	err = renamer.Rename(src, dst, opts.Override)
	return RenameResult{Src: src, Dst: dst, Err: err}, err != nil && !opts.DryRun, StageFilesystem
}

func destinationFor(f *tempren.File, evaluated string, mode Mode) string {
	if mode == ModePath {
		return filepath.Join(f.InputDirectory, evaluated)
	}
	return filepath.Join(f.InputDirectory, filepath.Dir(f.RelativePath), evaluated)
}
