// Package builtins implements the tag set every tempren job has
// available without any plugin configuration: text case folding, path
// decomposition, and filesystem metadata.
package builtins

import (
	"strings"

	"github.com/nemerle/tempren"
)

// UpperTag implements %text.Upper(){context}, upper-casing its context.
type UpperTag struct{}

// NewUpperTag constructs an UpperTag factory instance.
func NewUpperTag(tempren.Arguments) (tempren.Tag, error) {
	return &UpperTag{}, nil
}

// RequireContext implements tempren.Tag.
func (*UpperTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextRequired
}

// Configure implements tempren.Tag; Upper takes no arguments.
func (*UpperTag) Configure(tempren.Arguments) error {
	return nil
}

// Process implements tempren.Tag.
func (*UpperTag) Process(_ *tempren.File, context *string) (string, error) {
	return strings.ToUpper(*context), nil
}

// LowerTag implements %text.Lower(){context}, lower-casing its context.
type LowerTag struct{}

// NewLowerTag constructs a LowerTag factory instance.
func NewLowerTag(tempren.Arguments) (tempren.Tag, error) {
	return &LowerTag{}, nil
}

// RequireContext implements tempren.Tag.
func (*LowerTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextRequired
}

// Configure implements tempren.Tag; Lower takes no arguments.
func (*LowerTag) Configure(tempren.Arguments) error {
	return nil
}

// Process implements tempren.Tag.
func (*LowerTag) Process(_ *tempren.File, context *string) (string, error) {
	return strings.ToLower(*context), nil
}
