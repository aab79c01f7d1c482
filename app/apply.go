package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/daemon"
	"github.com/optionsinject/optionsinject/internal/injector"
	"github.com/optionsinject/optionsinject/internal/logger"
	"github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/variants"
)

func init() { //nolint: gochecknoinits
	applyCmd.Flags().DurationVar(&applyTimeout, "timeout", 30*time.Second, "How long to wait for the write") //nolint:mnd
	applyCmd.Flags().StringVar(&applyFile, "file", "", "Apply this JSON document instead of the default record")

	rootCmd.AddCommand(applyCmd)
}

var (
	applyTimeout time.Duration
	applyFile    string

	applyCmd = &cobra.Command{
		Use:     "apply",
		Short:   "Write the default settings record to the configured store",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closers, err := daemon.OpenStore(&cfg)
			if err != nil {
				return err
			}

			defer func() {
				for _, c := range closers {
					if err := c.Close(); err != nil {
						log.Warn().Err(err).Msg("failed to close storage backend")
					}
				}
			}()

			in := injector.New(store, logger.Sink{})

			var f *injector.Future

			if applyFile == "" {
				f = in.ApplyDefaultSettings(cmd.Context())
			} else {
				doc, err := variants.Load(applyFile)
				if err != nil {
					return err
				}

				items, err := settings.ItemsOf(doc)
				if err != nil {
					return err
				}

				f = in.Apply(cmd.Context(), items)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), applyTimeout)
			defer cancel()

			return f.Wait(ctx)
		},
	}
)
