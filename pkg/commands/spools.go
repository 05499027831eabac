package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/spools"
)

func addSpools(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "spools",
		Short: "List the Spoolman filament inventory",
		Example: `
shelf spools
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			l := spools.List{Client: d.client}
			return l.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addCost(topLevel *cobra.Command) {
	var grams float64
	var material string

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate filament cost for a print",
		Long:  "Pick the cheapest matching spool from the Spoolman inventory and estimate the cost of printing the given weight.",
		Example: `
shelf cost --grams 42 --material PLA
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			c := spools.Cost{
				Client:   d.client,
				Grams:    grams,
				Material: material,
				Currency: d.cfg.Currency,
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().Float64Var(&grams, "grams", 0, "Filament weight of the print in grams.")
	cmd.Flags().StringVar(&material, "material", "", "Filament material, for example PLA.")
	_ = cmd.MarkFlagRequired("grams")

	topLevel.AddCommand(cmd)
}
