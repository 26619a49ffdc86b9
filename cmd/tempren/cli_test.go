package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

func runCLI(t *testing.T, args []string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = run(args, bytes.NewReader(nil), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// S1 — a simple rename with no filter/sort.
func TestScenarioUppercaseFilenames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 1)
	writeFile(t, filepath.Join(dir, "markdown.md"), 1)

	_, stderr, code := runCLI(t, []string{"%Upper(){%Filename()}", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)

	assert.True(t, exists(t, filepath.Join(dir, "HELLO.TXT")))
	assert.True(t, exists(t, filepath.Join(dir, "MARKDOWN.MD")))
}

// S2 — dry-run leaves disk intact and reports the plan on stdout.
func TestScenarioDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 1)
	writeFile(t, filepath.Join(dir, "markdown.md"), 1)

	stdout, stderr, code := runCLI(t, []string{"-d", "%Upper(){%Filename()}", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)

	assert.Contains(t, stdout, "HELLO.TXT")
	assert.Contains(t, stdout, "MARKDOWN.MD")
	assert.True(t, exists(t, filepath.Join(dir, "hello.txt")))
	assert.True(t, exists(t, filepath.Join(dir, "markdown.md")))
}

// S3 — filter by glob leaves non-matching files untouched.
func TestScenarioGlobFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 1)
	writeFile(t, filepath.Join(dir, "markdown.md"), 1)

	_, stderr, code := runCLI(t, []string{"--filter", "*.txt", "%Upper(){%Filename()}", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)

	assert.True(t, exists(t, filepath.Join(dir, "HELLO.TXT")))
	assert.True(t, exists(t, filepath.Join(dir, "markdown.md")))
}

// S4 — template filter with a comparison, Count restarts at 0 over
// the filtered set.
func TestScenarioTemplateFilterComparison(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.bin"), 10)
	writeFile(t, filepath.Join(dir, "big.bin"), 100)

	_, stderr, code := runCLI(t, []string{
		"--filter-type", "template", "--filter", "%Size() < 50",
		"%Count().%Ext()", dir,
	})
	require.Equal(t, ExitCodeSuccess, code, stderr)

	assert.True(t, exists(t, filepath.Join(dir, "0.bin")))
	assert.True(t, exists(t, filepath.Join(dir, "big.bin")))
}

// S5 — sort by size, ascending then inverted.
func TestScenarioSortAscendingThenInverted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 10)
	writeFile(t, filepath.Join(dir, "markdown.md"), 100)

	_, stderr, code := runCLI(t, []string{"--sort", "%Size()", "%Count().%Ext()", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.True(t, exists(t, filepath.Join(dir, "0.txt")))
	assert.True(t, exists(t, filepath.Join(dir, "1.md")))
}

func TestScenarioSortInverted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 10)
	writeFile(t, filepath.Join(dir, "markdown.md"), 100)

	_, stderr, code := runCLI(t, []string{"--sort", "%Size()", "--sort-invert", "%Count().%Ext()", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.True(t, exists(t, filepath.Join(dir, "0.md")))
	assert.True(t, exists(t, filepath.Join(dir, "1.txt")))
}

// S7 — missing input path.
func TestScenarioMissingInputPath(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"%Upper(){%Filename()}", "/nonexistent/path"})
	assert.NotEqual(t, ExitCodeSuccess, code)
	assert.Contains(t, stderr, "doesn't exists")
}

// S8 — unknown tag.
func TestScenarioUnknownTag(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"%Nonexistent()", t.TempDir()})
	assert.Equal(t, ExitCodeTemplate, code)
	assert.Contains(t, stderr, "Template error")
	assert.Contains(t, stderr, "Nonexistent")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, code := runCLI(t, []string{"--version"})
	require.Equal(t, ExitCodeSuccess, code)
	assert.Regexp(t, regexp.MustCompile(`\d\.\d\.\d`), stdout)
}

func TestHelpFlag(t *testing.T) {
	stdout, _, code := runCLI(t, []string{"-h"})
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "usage: tempren")
}

func TestListTagsFlag(t *testing.T) {
	stdout, _, code := runCLI(t, []string{"-l"})
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "Upper")
	assert.Contains(t, stdout, "Filename")
}

func TestMissingArgsIsUsageError(t *testing.T) {
	_, stderr, code := runCLI(t, []string{})
	assert.Equal(t, ExitCodeUsage, code)
	assert.Contains(t, stderr, UsageLine)
}

func TestVerboseLogsVerbosityMessage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.txt"), 1)

	_, stderr, code := runCLI(t, []string{"-v", "%Upper(){%Filename()}", dir})
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Contains(t, stderr, "Verbosity level set to")
}
