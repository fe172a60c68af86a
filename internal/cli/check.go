package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rovo-lsp/internal/annotation"
	"rovo-lsp/internal/common"
	"rovo-lsp/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Validate annotation blocks in source files",
	Long: `Check every #[rovo] annotation block under the given files or
directories and fail on the first error, the same way the procedural macro
fails the build. Warnings are reported but do not fail the check.

With no arguments the current directory is checked.`,
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectSourceFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files found under %s", strings.Join(args, ", "))
	}

	checked := 0
	for _, path := range files {
		if err := checkFile(path, cfg); err != nil {
			return err
		}
		checked++
	}
	common.CheckLogger.Info("checked %d file(s), no errors", checked)
	return nil
}

func collectSourceFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !fi.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if name == "target" || strings.HasPrefix(name, ".") && path != arg {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".rs") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
	}
	return files, nil
}

// checkFile validates one source file and returns an error for the first
// hard finding, formatted file:line:col: message.
func checkFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")

	for _, b := range annotation.FindHandlerBlocks(lines) {
		info, issues := annotation.Parse(b.DocLines)
		sig := annotation.ExtractSignature(b.Signature)
		fnLine := b.FnLine
		if fnLine < 0 {
			fnLine = b.MarkerLine
		}
		issues = append(issues, annotation.Validate(info, sig, fnLine)...)
		for _, issue := range issues {
			if issue.Severity == annotation.SeverityWarning {
				common.CheckLogger.Warn("%s:%d: %s", path, issue.Line+1, issue.Message)
				continue
			}
			col := issue.StartCol
			if col < 0 && issue.Line < len(lines) {
				_, col = annotation.CommentText(lines[issue.Line])
			}
			if col < 0 {
				col = 0
			}
			return fmt.Errorf("%s:%d:%d: %s", path, issue.Line+1, col+1, issue.Message)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
