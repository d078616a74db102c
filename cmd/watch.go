package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mpakit.dev/pkg/mpakit/internal/controller"
	"mpakit.dev/pkg/mpakit/internal/domain"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [extensions...]",
		Short: "Re-resolve the entry table when sources change",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			// diffs stream to the terminal, so never page
			ui := controller.NewSimpleUI(cmd.OutOrStdout(), cmd.ErrOrStderr(), controller.FormatTable)

			return newWorkflow(ui).Watch(cmd.Context(), domain.WatchArgs{
				EntriesArgs: domain.EntriesArgs{
					Request:  scanRequest(args),
					Manifest: m.Path(viper.GetString(manifestConfigKey)),
				},
				Debounce: viper.GetDuration(debounceConfigKey),
			})
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().Duration(debounceFlagName, viper.GetDuration(debounceConfigKey), "quiet period before re-resolving after a change")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), debounceConfigKey)
}
