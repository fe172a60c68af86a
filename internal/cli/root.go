package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rovo-lsp",
	Short: "Language server and checker for rovo API annotations",
	Long: `rovo-lsp analyzes the rovo annotation language embedded in Rust doc
comments above #[rovo] handlers. It ships two front-ends over one grammar:

  serve   Run the language server over stdio (completion, hover, diagnostics,
          goto-definition, references, rename)
  check   Validate annotation blocks in source files and fail on the first
          error, mirroring what the procedural macro rejects at compile time`,
	// Don't show usage when there's an error
	SilenceUsage: true,
	// Don't show errors (we'll handle them ourselves)
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
}
