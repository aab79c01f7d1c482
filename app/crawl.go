package app

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/crawl"
	"github.com/optionsinject/optionsinject/internal/signature"
)

func init() { //nolint: gochecknoinits
	crawlCmd.Flags().StringVar(&crawlOut, "out", signature.DefaultDir, "Signature output directory")
	crawlCmd.Flags().DurationVar(&crawlSettle, "settle", crawl.DefaultSettle, "Wait after each page load")
	crawlCmd.Flags().DurationVar(&crawlPause, "pause", crawl.DefaultPause, "Wait between configurations")
	crawlCmd.Flags().DurationVar(&crawlTimeout, "timeout", crawl.DefaultTimeout, "Time limit per configuration")
	crawlCmd.Flags().BoolVar(&crawlHeadless, "headless", true, "Run Chrome in headless mode")
	crawlCmd.Flags().StringVar(&crawlChrome, "chrome", "", "Chrome binary (default: found on PATH)")

	rootCmd.AddCommand(crawlCmd)
}

var (
	crawlOut      string
	crawlSettle   time.Duration
	crawlPause    time.Duration
	crawlTimeout  time.Duration
	crawlHeadless bool
	crawlChrome   string

	crawlCmd = &cobra.Command{
		Use:   "crawl <config-dir> <extension-dir> [url]",
		Short: "Install every configN.json into an extension and record mutation signatures",
		Args:  cobra.RangeArgs(2, 3), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := crawl.Options{
				ExtensionDir: args[1],
				SignatureDir: crawlOut,
				Pause:        crawlPause,
				Timeout:      crawlTimeout,
			}

			if len(args) == 3 { //nolint:mnd
				opts.URL = args[2]
			}

			browser := crawl.Chrome{ExecPath: crawlChrome, Headless: crawlHeadless, Settle: crawlSettle}

			res, err := crawl.New(browser, opts).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			log.Info().
				Int("signatures", len(res.Signatures)).
				Int("failed", len(res.Failed)).
				Str("out", crawlOut).
				Msg("crawl finished")

			return nil
		},
	}
)
