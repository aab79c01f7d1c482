package app

import (
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/daemon"
)

func init() { //nolint: gochecknoinits
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (no graceful shutdown delay)")

	rootCmd.AddCommand(serveCmd)
}

var (
	devMode bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings over HTTP and seed an empty store",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			defer d.Close()

			return d.Start(cmd.Context())
		},
	}
)
