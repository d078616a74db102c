// Package cmd provides the root command and CLI setup for mpakit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mpakit.dev/pkg/mpakit/internal/adapter"
	"mpakit.dev/pkg/mpakit/internal/controller"
	"mpakit.dev/pkg/mpakit/internal/domain"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var directiveReader adapter.DirectiveReader
var manifestStore adapter.ManifestStore
var resolver domain.Resolver

// newWorkflow builds the workflow for the UI selected by the output flags.
// Tests replace it with a mock.
var newWorkflow func(ui controller.UI) domain.Workflow

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	directiveReader = adapter.NewLocalDirectiveReader()
	manifestStore = adapter.NewManifestStore(fsAdapter)
	resolver = domain.NewResolver(fsAdapter, directiveReader)
	newWorkflow = func(ui controller.UI) domain.Workflow {
		return domain.NewWorkflow(resolver, manifestStore, ui, nil)
	}
}

const extensionsHelp = `Extensions default to .js and may be given with or without the leading dot:
  mpakit entries              scan src/**/*.js
  mpakit entries .js .css     scan for scripts and stylesheets
  mpakit entries ts -s app    scan app/**/*.ts`

const rootLongDescription = `mpakit discovers the entry points of a multi-page frontend build.

It scans a source tree, skips partials (files starting with an underscore),
files whose first bytes are the /*not entry*/ marker and names that do not
end in a letter or digit, and prints the key to path table a bundler uses as
its entry map.

` + extensionsHelp

const entriesLongDescription = `Resolve the entry table for the given extensions.

` + extensionsHelp

const watchLongDescription = `Resolve the entry table, then watch the source tree and print a diff of
the table whenever it changes.

` + extensionsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mpakit",
		Short: "Entry discovery for multi-page builds",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(sourceFlagName, "s", viper.GetString(sourceConfigKey), "source directory scanned for entries")
	bindFlagToConfig(flags.Lookup(sourceFlagName), sourceConfigKey)

	flags.String(baseDirFlagName, viper.GetString(baseDirConfigKey), "directory entry keys are relative to (default: the source directory)")
	bindFlagToConfig(flags.Lookup(baseDirFlagName), baseDirConfigKey)

	flags.String(includesFlagName, viper.GetString(includesConfigKey), "comma-separated keys to keep; takes precedence over --excludes")
	bindFlagToConfig(flags.Lookup(includesFlagName), includesConfigKey)

	flags.String(excludesFlagName, viper.GetString(excludesConfigKey), "comma-separated keys to drop")
	bindFlagToConfig(flags.Lookup(excludesFlagName), excludesConfigKey)

	flags.Bool(noskipFlagName, viper.GetBool(noskipConfigKey), "keep files whose name starts with an underscore")
	bindFlagToConfig(flags.Lookup(noskipFlagName), noskipConfigKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(verboseConfigKey), "print the resolved entry table")
	bindFlagToConfig(flags.Lookup(verboseFlagName), verboseConfigKey)

	flags.IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files probed concurrently")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.Bool(strictFlagName, viper.GetBool(strictConfigKey), "fail when two files map to the same key")
	bindFlagToConfig(flags.Lookup(strictFlagName), strictConfigKey)

	flags.Bool(skipUnreadableFlagName, viper.GetBool(skipUnreadableConfigKey), "warn about unreadable files instead of failing")
	bindFlagToConfig(flags.Lookup(skipUnreadableFlagName), skipUnreadableConfigKey)

	flags.StringP(manifestFlagName, "m", viper.GetString(manifestConfigKey), "write the entry table to this file (.json, .yaml or .yml)")
	bindFlagToConfig(flags.Lookup(manifestFlagName), manifestConfigKey)

	flags.Bool(debugFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(debugFlagName), logVerboseKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseExtensions(args []string) []m.Extension {
	values := args
	if len(values) == 0 {
		values = viper.GetStringSlice(extensionsConfigKey)
	}

	exts := make([]m.Extension, 0, len(values))
	for _, value := range values {
		exts = append(exts, m.Extension(value))
	}

	return exts
}

// scanRequest builds the resolver request from positional extensions and the
// bound configuration.
func scanRequest(args []string) m.ScanRequest {
	return m.ScanRequest{
		Extensions:             parseExtensions(args),
		SourceRoot:             m.Path(viper.GetString(sourceConfigKey)),
		BaseDir:                m.Path(viper.GetString(baseDirConfigKey)),
		Includes:               m.ParseKeyList(viper.GetString(includesConfigKey)),
		Excludes:               m.ParseKeyList(viper.GetString(excludesConfigKey)),
		AllowLeadingUnderscore: viper.GetBool(noskipConfigKey),
		Verbose:                viper.GetBool(verboseConfigKey),
		Threads:                viper.GetInt(parallelConfigKey),
		Strict:                 viper.GetBool(strictConfigKey),
		SkipUnreadable:         viper.GetBool(skipUnreadableConfigKey),
	}
}

// commandUI picks the UI for cmd's output streams.
func commandUI(cmd *cobra.Command, format controller.OutputFormat) controller.UI {
	out := cmd.OutOrStdout()

	return controller.NewUI(out, cmd.ErrOrStderr(), format, controller.IsTTY(out))
}
