package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/reconcile"
	"tableflip.dev/shelf/pkg/runner/collections"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "edit <collection-id>",
		Short: "Edit collection fields",
		Long:  "Overlay field changes on a collection. Only flags that were set change anything; every other field, including the member list, is carried forward untouched.",
		Example: `
shelf edit 1a2b3c --name "Sail Boats"
shelf edit 1a2b3c --parent ""
shelf edit 1a2b3c --tag sail --tag hull
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}

			edits := reconcile.FieldEdits{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				edits.Name = &fo.Name
			}
			if flags.Changed("category") {
				edits.Category = &fo.Category
			}
			if flags.Changed("description") {
				edits.Description = &fo.Description
			}
			if flags.Changed("tag") {
				edits.Tags = &fo.Tags
			}
			if flags.Changed("parent") {
				edits.ParentID = &fo.Parent
			}

			e := collections.Edit{
				Client:     d.client,
				Reconciler: d.reconciler,
				TargetID:   args[0],
				Edits:      edits,
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddFieldArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
