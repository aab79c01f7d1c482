package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/variants"
)

func init() { //nolint: gochecknoinits
	variantsCmd.Flags().StringVar(&variantsInput, "input", "", "JSON document to vary (default: the default record)")
	variantsCmd.Flags().StringVar(&variantsOut, "out", "configurations", "Output directory")
	variantsCmd.Flags().IntVar(&variantsLimit, "limit", 1000, "Maximum number of variants, 0 keeps all") //nolint:mnd
	variantsCmd.Flags().Uint64Var(&variantsSeed, "seed", 1, "Seed of the random choices")

	rootCmd.AddCommand(variantsCmd)
}

var (
	variantsInput string
	variantsOut   string
	variantsLimit int
	variantsSeed  uint64

	variantsCmd = &cobra.Command{
		Use:   "variants",
		Short: "Write combinatorial variants of a settings document",
		RunE: func(_ *cobra.Command, _ []string) error {
			var (
				doc map[string]any
				err error
			)

			if variantsInput == "" {
				doc, err = variants.Document(settings.Default())
			} else {
				doc, err = variants.Load(variantsInput)
			}

			if err != nil {
				return err
			}

			docs, err := variants.New(variants.Options{Seed: variantsSeed, Limit: variantsLimit}).Generate(doc)
			if err != nil {
				return err
			}

			paths, err := variants.WriteFiles(variantsOut, docs)
			if err != nil {
				return err
			}

			log.Info().Int("variants", len(paths)).Str("out", variantsOut).Msg("variants written")

			return nil
		},
	}
)
