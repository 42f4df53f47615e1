// Command editor is a raw-mode terminal text editor for a single file
// (spec.md §6 "Command line").
package main

import (
	"fmt"
	"os"

	"github.com/gokilo/editor/internal/editor"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := editor.Config{Version: version}
	exitCode := 0

	cmd := &cobra.Command{
		Use:           "editor [path]",
		Short:         "A small raw-mode terminal text editor",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Path = args[0]
			}
			exitCode = editor.Run(cfg)
			return nil
		},
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
