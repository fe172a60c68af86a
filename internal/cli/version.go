package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"rovo-lsp/internal/version"
)

var versionJSON bool

type versionInfo struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	BuildTime    string `json:"build_time"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE:  runVersion,
}

func runVersion(_ *cobra.Command, _ []string) error {
	info := versionInfo{
		Version:      version.Version,
		GitCommit:    version.GitCommit,
		BuildTime:    version.BuildTime,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
	}

	if versionJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version information: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("rovo-lsp %s\n", info.Version)
	if info.GitCommit != "unknown" {
		fmt.Printf("Git Commit: %s\n", info.GitCommit)
	}
	if info.BuildTime != "unknown" {
		fmt.Printf("Build Time: %s\n", info.BuildTime)
	}
	fmt.Printf("Go Version: %s\n", info.GoVersion)
	fmt.Printf("Platform:   %s/%s\n", info.Platform, info.Architecture)
	return nil
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information in JSON format")

	rootCmd.AddCommand(versionCmd)
}
