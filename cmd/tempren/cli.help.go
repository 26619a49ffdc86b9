package main

import (
	"fmt"
	"io"
)

func runHelp(stdout io.Writer) int {
	fmt.Fprintln(stdout, HelpText)
	return ExitCodeSuccess
}
