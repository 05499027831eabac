package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/collections"
)

func addAttach(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "attach <collection-id> <model-id>...",
		Short: "Add models to an existing collection",
		Example: `
shelf attach 1a2b3c m1 m2 m3
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			a := collections.Attach{
				Client:     d.client,
				Reconciler: d.reconciler,
				TargetID:   args[0],
				Members:    args[1:],
			}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
