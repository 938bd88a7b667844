// Package main is the dtlit CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/gdql/dtlit/cmd/dtlit/command"
)

func main() {
	if err := command.GetRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
