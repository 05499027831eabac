package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/collections"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "remove-members <collection-id> <model-id>...",
		Short: "Remove models from a collection",
		Example: `
shelf remove-members 1a2b3c m2 --yes
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			r := collections.Remove{
				Client:     d.client,
				Reconciler: d.reconciler,
				TargetID:   args[0],
				Members:    args[1:],
				Confirm:    co.Yes,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <collection-id>",
		Short: "Delete a collection",
		Example: `
shelf delete 1a2b3c --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			del := collections.Delete{
				Client:     d.client,
				Reconciler: d.reconciler,
				TargetID:   args[0],
				Confirm:    co.Yes,
			}
			return del.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
