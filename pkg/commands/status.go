package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the printer status",
		Example: `
shelf status
shelf status --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			s := status.Status{
				Client:   d.client,
				Watch:    watch,
				Interval: d.cfg.PollInterval,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling and print every update.")

	topLevel.AddCommand(cmd)
}
