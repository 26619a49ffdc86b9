package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nemerle/tempren"
	"github.com/nemerle/tempren/builtins"
	"github.com/nemerle/tempren/pipeline"
)

// run is the CLI's testable entry point, separated from main so
// tests can supply in-memory readers/writers and inspect the exit
// code directly.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintln(stderr, UsageLine)
		return ExitCodeUsage
	}

	if cfg.showVersion {
		return runVersion(stdout)
	}
	if cfg.showHelp {
		return runHelp(stdout)
	}

	logger := newLogger(cfg.verbose, stderr)
	defer logger.Sync()

	if cfg.verbose {
		logger.Debug(VerbosityMessage)
	}

	registry := tempren.NewRegistry(logger)
	if err := builtins.Register(registry); err != nil {
		fmt.Fprintln(stderr, ErrMsgInternalPrefix+": "+err.Error())
		return ExitCodeInternal
	}

	if cfg.listTags {
		return runListTags(registry, stdout)
	}

	cfg.opts.Logger = logger
	result, err := pipeline.Run(cfg.opts, registry)
	if err != nil {
		return reportJobError(err, stderr)
	}

	if cfg.opts.DryRun {
		printDryRunPlan(result, stdout)
	}
	return ExitCodeSuccess
}

func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core)
}

func printDryRunPlan(result *pipeline.Result, stdout io.Writer) {
	for _, r := range result.Renamed {
		if r.Err != nil {
			continue
		}
		fmt.Fprintln(stdout, r.Src+RenameArrow+r.Dst)
	}
}

func reportJobError(err error, stderr io.Writer) int {
	var jobErr *pipeline.JobError
	if !errors.As(err, &jobErr) {
		fmt.Fprintln(stderr, ErrMsgInternalPrefix+": "+err.Error())
		return ExitCodeInternal
	}

	switch jobErr.Stage {
	case pipeline.StageUsage:
		fmt.Fprintln(stderr, jobErr.Error())
		return ExitCodeUsage
	case pipeline.StageTemplate:
		fmt.Fprintln(stderr, ErrMsgTemplatePrefix+": "+jobErr.Error())
		return ExitCodeTemplate
	case pipeline.StageFilesystem:
		fmt.Fprintln(stderr, ErrMsgFilesystemPrefix+": "+jobErr.Error())
		return ExitCodeFilesystem
	default:
		fmt.Fprintln(stderr, ErrMsgInternalPrefix+": "+jobErr.Error())
		return ExitCodeInternal
	}
}
