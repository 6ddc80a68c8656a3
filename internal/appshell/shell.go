package appshell

import (
	"context"
	"io"
	"os"
)

// Main runs a command against the process arguments and standard streams,
// then exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
