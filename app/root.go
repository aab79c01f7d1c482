// Package app implements the main application commands.
package app

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/logger"
)

// EnvPrefix prefixes the environment variables bound to flags.
const EnvPrefix = "OPTIONSINJECT"

var (
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "optionsinject",
		Short: "optionsinject writes a fixed Dark Reader configuration into extension storage",
		Long: `optionsinject writes a fixed Dark Reader settings record into the
synchronized extension storage and logs "Options updated." when the write is done.

It also serves the record over HTTP, generates variants of it and installs
a content script doing the same write into an unpacked extension.`,
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("config", "", "Directory holding main.toml (default ./etc/)")

	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
}

// configDir returns the configured directory with a trailing separator.
func configDir() string {
	dir := viper.GetString("config")
	if dir != "" && !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}

	return dir
}

// loadConfig reads the configuration and initializes the logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configDir()); err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
