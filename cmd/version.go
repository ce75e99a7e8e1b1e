package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

var version string
var commitHash string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of opusbox",
	Long:  `All software has versions. This is opusbox's.`,
	Run: func(cmd *cobra.Command, args []string) {
		printOpusboxVersion()
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

func printOpusboxVersion() {
	// version is typically defined through a git tag and injected during
	// compilation; if not, just set it to "dev"
	if version == "" {
		version = "dev"
	}
	buildDate := time.Now().Format(time.RFC3339)
	fmt.Printf("opusbox Version: %s, %s/%s, BuildDate: %s, Commit: %s\n",
		version, runtime.GOOS, runtime.GOARCH, buildDate, commitHash)
}
