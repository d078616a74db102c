package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mpakit.dev/pkg/mpakit/internal/controller"
	"mpakit.dev/pkg/mpakit/internal/domain"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// entriesCmd represents the entries command.
var entriesCmd = newEntriesCmd()

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries [extensions...]",
		Short: "Resolve the entry table",
		Long:  entriesLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseOutputFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			showDiff, err := cmd.Flags().GetBool(diffFlagName)
			if err != nil {
				return err
			}

			return newWorkflow(commandUI(cmd, format)).Entries(cmd.Context(), domain.EntriesArgs{
				Request:   scanRequest(args),
				Manifest:  m.Path(viper.GetString(manifestConfigKey)),
				ShowDiff:  showDiff,
				FailEmpty: viper.GetBool(failEmptyConfigKey),
			})
		},
	}

	configureEntriesFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(entriesCmd)
}

func configureEntriesFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(formatFlagName, "f", viper.GetString(formatConfigKey), "output format: table, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().Bool(failEmptyFlagName, viper.GetBool(failEmptyConfigKey), "exit with an error when no entry is found")
	bindFlagToConfig(cmd.Flags().Lookup(failEmptyFlagName), failEmptyConfigKey)

	cmd.Flags().Bool(diffFlagName, false, "print a diff against the existing --manifest before overwriting it")
}
