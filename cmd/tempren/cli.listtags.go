package main

import (
	"fmt"
	"io"

	"github.com/nemerle/tempren"
)

// runListTags prints every registered tag: its short name starting at
// column 1, followed by an indented line naming the category it
// resolves under.
func runListTags(registry *tempren.Registry, stdout io.Writer) int {
	for _, d := range registry.List() {
		fmt.Fprintln(stdout, d.Name)
		fmt.Fprintf(stdout, "%s%s\n", ListTagsDescriptionIndent, d.Category)
	}
	return ExitCodeSuccess
}
