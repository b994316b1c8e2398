// Package main is the entry point for the docvet CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wflang/docvet/cmd/docvet/commands"
)

func main() {
	if err := run(); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.New().Execute(context.Background())
}
