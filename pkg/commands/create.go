package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/collections"
)

func addCreate(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}
	var members []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a collection",
		Example: `
shelf create Boats
shelf create Hulls --parent 1a2b3c --tag sail --tag hull
shelf create Favorites --member m1 --member m2
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			c := collections.Create{
				Client:      d.client,
				Reconciler:  d.reconciler,
				Name:        strings.Join(args, " "),
				ParentID:    fo.Parent,
				Category:    fo.Category,
				Description: fo.Description,
				Tags:        fo.Tags,
				Members:     members,
			}
			return c.Do(cmd.Context())
		},
	}

	options.AddFieldArgs(cmd, fo)
	cmd.Flags().StringSliceVar(&members, "member", nil, "Model id to seed the collection with, repeatable.")

	topLevel.AddCommand(cmd)
}
