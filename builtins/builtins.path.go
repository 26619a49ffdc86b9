package builtins

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/nemerle/tempren"
)

// FilenameTag implements %Filename(), the input file's basename
// including its extension.
type FilenameTag struct{}

// NewFilenameTag constructs a FilenameTag factory instance.
func NewFilenameTag(tempren.Arguments) (tempren.Tag, error) {
	return &FilenameTag{}, nil
}

// RequireContext implements tempren.Tag.
func (*FilenameTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextForbidden
}

// Configure implements tempren.Tag; Filename takes no arguments.
func (*FilenameTag) Configure(tempren.Arguments) error {
	return nil
}

// Process implements tempren.Tag.
func (*FilenameTag) Process(file *tempren.File, _ *string) (string, error) {
	return file.Basename(), nil
}

// ExtTag implements %Ext(), the input file's extension without its
// leading dot.
type ExtTag struct{}

// NewExtTag constructs an ExtTag factory instance.
func NewExtTag(tempren.Arguments) (tempren.Tag, error) {
	return &ExtTag{}, nil
}

// RequireContext implements tempren.Tag.
func (*ExtTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextForbidden
}

// Configure implements tempren.Tag; Ext takes no arguments.
func (*ExtTag) Configure(tempren.Arguments) error {
	return nil
}

// Process implements tempren.Tag.
func (*ExtTag) Process(file *tempren.File, _ *string) (string, error) {
	return strings.TrimPrefix(filepath.Ext(file.Basename()), "."), nil
}

// CountTag implements %Count(), a zero-based counter that advances on
// every Process call. Each %Count() placeholder gets its own CountTag
// instance when its template is bound, so its value tracks the
// evaluation order the pipeline driver feeds it in — gathered,
// filtered, then sorted.
type CountTag struct {
	mu    sync.Mutex
	next  int64
	start int64
	step  int64
}

// NewCountTag constructs a CountTag factory instance and configures it
// with its placeholder's arguments.
func NewCountTag(args tempren.Arguments) (tempren.Tag, error) {
	t := &CountTag{step: 1}
	if err := t.Configure(args); err != nil {
		return nil, err
	}
	return t, nil
}

// RequireContext implements tempren.Tag.
func (*CountTag) RequireContext() tempren.ContextRequirement {
	return tempren.ContextForbidden
}

// Configure implements tempren.Tag. Optional keyword arguments "start"
// and "step" override the defaults of 0 and 1.
func (t *CountTag) Configure(args tempren.Arguments) error {
	t.start = 0
	if v, ok := args.Get("start"); ok {
		t.start = v.Int
	}
	if v, ok := args.Get("step"); ok {
		t.step = v.Int
	}
	t.next = t.start
	return nil
}

// Process implements tempren.Tag.
func (t *CountTag) Process(_ *tempren.File, _ *string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	value := t.next
	t.next += t.step
	return strconv.FormatInt(value, 10), nil
}
