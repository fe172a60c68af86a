package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rovo-lsp/internal/config"
	"rovo-lsp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server over stdio",
	Long: `Start the language server speaking LSP over stdin/stdout.

The server pushes diagnostics on every document open and change, and answers
completion, hover, goto-definition, references, and rename requests for rovo
annotation blocks. All logging goes to stderr; stdout carries only the
protocol stream.`,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv := server.New(cfg, logger)
	return srv.RunStdio(context.Background())
}

// buildLogger configures zap for a stdio server: everything on stderr,
// stdout stays reserved for the protocol.
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
