package app

import (
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/script"
	"github.com/optionsinject/optionsinject/internal/settings"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(scriptCmd)
}

var scriptCmd = &cobra.Command{
	Use:   "script <extension-dir> [settings.json]",
	Short: "Install a content script writing the settings into an unpacked extension",
	Args:  cobra.RangeArgs(1, 2), //nolint:mnd
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 2 { //nolint:mnd
			return script.InstallFile(args[0], args[1])
		}

		return script.Install(args[0], settings.Default())
	},
}
