package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	// Version information - typically set via ldflags at build time
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of splitcs",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "splitcs %s\n", Version)
	fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
	fmt.Fprintf(out, "Build date: %s\n", BuildDate)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
