package builtins

import (
	"os"
	"strconv"

	"github.com/nemerle/tempren"
)

// SizeTag implements %Size(), the input file's size in bytes.
type SizeTag struct{}

// NewSizeTag constructs a SizeTag factory instance.
func NewSizeTag(tempren.Arguments) (tempren.Tag, error) {
	return &SizeTag{}, nil
}

// RequireContext implements tempren.Tag.
func (*SizeTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextForbidden
}

// Configure implements tempren.Tag; Size takes no arguments.
func (*SizeTag) Configure(tempren.Arguments) error {
	return nil
}

// Process implements tempren.Tag.
func (*SizeTag) Process(file *tempren.File, _ *string) (string, error) {
	info, err := os.Stat(file.AbsolutePath())
	if err != nil {
		return "", tempren.NewIOError(file.AbsolutePath(), err)
	}
	return strconv.FormatInt(info.Size(), 10), nil
}
