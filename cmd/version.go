package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// develVersion is reported for binaries built from a checkout.
const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mpakit version",
		Long:  "Prints the mpakit module version and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			printVersion(cmd.OutOrStdout(), info, ok)
		},
	}
}

func printVersion(w io.Writer, info *debug.BuildInfo, ok bool) {
	version := develVersion
	goVersion := "unknown"

	if ok && info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		goVersion = info.GoVersion
	}

	fmt.Fprintf(w, "%s version %s (%s)\n", configBaseName, version, goVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
