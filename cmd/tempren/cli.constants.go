package main

// Exit codes, per the external interface this binary promises.
const (
	ExitCodeSuccess    = 0
	ExitCodeInternal   = 1
	ExitCodeUsage      = 2
	ExitCodeTemplate   = 3
	ExitCodeFilesystem = 4
)

// Flag names - long form.
const (
	FlagHelp         = "help"
	FlagVersion      = "version"
	FlagListTags     = "list-tags"
	FlagVerbose      = "verbose"
	FlagDryRun       = "dry-run"
	FlagName         = "name"
	FlagPath         = "path"
	FlagFilter       = "filter"
	FlagFilterType   = "filter-type"
	FlagFilterInvert = "filter-invert"
	FlagSort         = "sort"
	FlagSortInvert   = "sort-invert"
)

// Flag names - short form.
const (
	FlagHelpShort         = "h"
	FlagListTagsShort     = "l"
	FlagVerboseShort      = "v"
	FlagDryRunShort       = "d"
	FlagNameShort         = "n"
	FlagPathShort         = "p"
	FlagFilterShort       = "f"
	FlagFilterTypeShort   = "ft"
	FlagFilterInvertShort = "fi"
	FlagSortShort         = "s"
	FlagSortInvertShort   = "si"
)

// FilterTypeDefault is the filter kind used when -ft/--filter-type is
// not given.
const FilterTypeDefault = "glob"

const (
	FilterTypeGlob     = "glob"
	FilterTypeRegex    = "regex"
	FilterTypeTemplate = "template"
)

// Version is this build's semantic version.
const Version = "0.4.0"

// CLIName is the program name printed in usage/help text.
const CLIName = "tempren"

// User-facing text. All of it lives here so nothing is an inline
// literal scattered through the command wiring.
const (
	UsageLine = `usage: tempren [flags] TEMPLATE INPUT_DIR`

	HelpText = `usage: tempren [flags] TEMPLATE INPUT_DIR

Renames files in INPUT_DIR according to TEMPLATE, a tempren pattern
made of literal text and %category.name(args){context} tags.

Flags:
    --version                      print version and exit
    -h, --help                     print this message and exit
    -l, --list-tags                list every registered tag and exit
    -v, --verbose                  elevate logging to standard error
    -d, --dry-run                  print OLD -> NEW, make no filesystem changes
    -n, --name                     name mode (default): rename in place
    -p, --path                     path mode: evaluated output may contain directories
    -f, --filter EXPR              filter expression
    -ft, --filter-type KIND        glob, regex, or template (default glob)
    -fi, --filter-invert           invert the filter
    -s, --sort EXPR                sort key template
    -si, --sort-invert             invert the sort order`

	ListTagsDescriptionIndent = "    "
)

// Error messages surfaced on stderr. The missing-input-directory
// message is not here: it comes from the pipeline package's own error.
const (
	ErrMsgMissingArgs       = "usage: tempren [flags] TEMPLATE INPUT_DIR: TEMPLATE and INPUT_DIR are required"
	ErrMsgTooManyArgs       = "usage: tempren [flags] TEMPLATE INPUT_DIR: too many positional arguments"
	ErrMsgInvalidFilterType = "invalid --filter-type, want glob, regex, or template"
	ErrMsgTemplatePrefix    = "Template error"
	ErrMsgFilesystemPrefix  = "Filesystem error"
	ErrMsgInternalPrefix    = "Internal error"
	VerbosityMessage        = "Verbosity level set to debug"
)

// RenameArrow separates OLD and NEW in dry-run output.
const RenameArrow = " -> "
