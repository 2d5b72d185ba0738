// Command docdiff prints word-level differences between two documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "docdiff",
		Short:         "Word-level document diff",
		Long:          `docdiff compares two documents (text, Markdown, HTML, PDF, DOCX, CSV or any plain file) and reports the differences word by word.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(diffCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
