package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive collection browser",
		Example: `
shelf ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			u := ui.UI{
				Client:       d.client,
				Reconciler:   d.reconciler,
				Broadcaster:  d.broadcaster,
				Cache:        d.cache,
				PollInterval: d.cfg.PollInterval,
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
