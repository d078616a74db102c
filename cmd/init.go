package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write mpakit.yaml with the current settings",
		Long: `Write mpakit.yaml to the working directory. It records the entry scan,
output and watch settings currently in effect (defaults, environment and
flags), so a project can pin them next to its bundler config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool(forceFlagName)
			if err != nil {
				return err
			}

			return writeConfig(cmd, filepath.Join(configFolderPath, configFileName), force)
		},
	}

	cmd.Flags().Bool(forceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}

func writeConfig(cmd *cobra.Command, targetPath string, force bool) error {
	write := viper.SafeWriteConfigAs
	if force {
		write = viper.WriteConfigAs
	}

	if err := write(targetPath); err != nil {
		return fmt.Errorf("write %s: %w", targetPath, err)
	}

	cmd.Printf("wrote %s (%d entry extensions, source %q)\n",
		targetPath, len(viper.GetStringSlice(extensionsConfigKey)), viper.GetString(sourceConfigKey))

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
