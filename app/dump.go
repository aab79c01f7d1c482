package app

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/settings"
)

const (
	formatJSON = "json"
	formatTOML = "toml"
)

// ErrUnknownFormat is returned for a --format other than json or toml.
var ErrUnknownFormat = errors.New("unknown format")

func init() { //nolint: gochecknoinits
	dumpCmd.PersistentFlags().StringVar(&dumpFormat, "format", formatJSON, "Output format: json or toml")

	dumpCmd.AddCommand(dumpConfigCmd)
	rootCmd.AddCommand(dumpCmd)
}

var (
	dumpFormat string

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the default settings record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := dumpRecord(settings.Default(), dumpFormat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}

	dumpConfigCmd = &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				out string
				err error
			)

			switch dumpFormat {
			case formatJSON:
				out, err = config.DumpConfigJSON(&cfg)
			case formatTOML:
				out, err = config.DumpConfig(&cfg)
			default:
				return errors.Wrap(ErrUnknownFormat, dumpFormat)
			}

			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
)

func dumpRecord(r settings.Record, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}

		return string(data) + "\n", nil
	case formatTOML:
		data, err := toml.Marshal(r)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode record")
		}

		return string(data), nil
	default:
		return "", errors.Wrap(ErrUnknownFormat, format)
	}
}
