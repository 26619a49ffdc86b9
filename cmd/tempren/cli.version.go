package main

import (
	"fmt"
	"io"
)

func runVersion(stdout io.Writer) int {
	fmt.Fprintln(stdout, Version)
	return ExitCodeSuccess
}
