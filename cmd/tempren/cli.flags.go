package main

import (
	"errors"
	"flag"
	"io"

	"github.com/nemerle/tempren/pipeline"
)

// config holds one invocation's fully parsed command line.
type config struct {
	showHelp    bool
	showVersion bool
	listTags    bool
	verbose     bool

	template string
	inputDir string

	opts pipeline.Options
}

// parseArgs parses args into a config. A nil error with showHelp,
// showVersion, or listTags set means the caller should act on that
// flag and exit without running a job.
func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet(CLIName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	var filterType string
	var pathMode bool

	fs.BoolVar(&cfg.showHelp, FlagHelp, false, "")
	fs.BoolVar(&cfg.showHelp, FlagHelpShort, false, "")
	fs.BoolVar(&cfg.showVersion, FlagVersion, false, "")
	fs.BoolVar(&cfg.listTags, FlagListTags, false, "")
	fs.BoolVar(&cfg.listTags, FlagListTagsShort, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")
	fs.BoolVar(&cfg.opts.DryRun, FlagDryRun, false, "")
	fs.BoolVar(&cfg.opts.DryRun, FlagDryRunShort, false, "")
	fs.BoolVar(&pathMode, FlagPath, false, "")
	fs.BoolVar(&pathMode, FlagPathShort, false, "")
	// -n/--name is the default and accepted for symmetry; it carries
	// no state beyond not being -p/--path.
	var nameMode bool
	fs.BoolVar(&nameMode, FlagName, false, "")
	fs.BoolVar(&nameMode, FlagNameShort, false, "")
	fs.StringVar(&cfg.opts.FilterExpr, FlagFilter, "", "")
	fs.StringVar(&cfg.opts.FilterExpr, FlagFilterShort, "", "")
	fs.StringVar(&filterType, FlagFilterType, FilterTypeDefault, "")
	fs.StringVar(&filterType, FlagFilterTypeShort, FilterTypeDefault, "")
	fs.BoolVar(&cfg.opts.FilterInvert, FlagFilterInvert, false, "")
	fs.BoolVar(&cfg.opts.FilterInvert, FlagFilterInvertShort, false, "")
	fs.StringVar(&cfg.opts.SortExpr, FlagSort, "", "")
	fs.StringVar(&cfg.opts.SortExpr, FlagSortShort, "", "")
	fs.BoolVar(&cfg.opts.SortInvert, FlagSortInvert, false, "")
	fs.BoolVar(&cfg.opts.SortInvert, FlagSortInvertShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.showHelp || cfg.showVersion || cfg.listTags {
		return cfg, nil
	}

	switch filterType {
	case FilterTypeGlob:
		cfg.opts.FilterKind = pipeline.FilterGlob
	case FilterTypeRegex:
		cfg.opts.FilterKind = pipeline.FilterRegex
	case FilterTypeTemplate:
		cfg.opts.FilterKind = pipeline.FilterTemplate
	default:
		return nil, errors.New(ErrMsgInvalidFilterType)
	}

	if pathMode {
		cfg.opts.Mode = pipeline.ModePath
	} else {
		cfg.opts.Mode = pipeline.ModeName
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return nil, errors.New(ErrMsgMissingArgs)
	}
	if len(rest) > 2 {
		return nil, errors.New(ErrMsgTooManyArgs)
	}

	cfg.template = rest[0]
	cfg.inputDir = rest[1]
	cfg.opts.Template = cfg.template
	cfg.opts.InputDir = cfg.inputDir

	return cfg, nil
}
