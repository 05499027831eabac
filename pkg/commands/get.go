package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/collections"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List collections",
		Long:  "List root collections, or the children of --parent with a breadcrumb header. Falls back to the local cache when the server is unreachable.",
		Example: `
shelf get
shelf get --parent 1a2b3c
shelf get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			g := collections.Get{
				Client: d.client,
				Cache:  d.cache,
				Parent: co.Parent,
				ShowID: oo.ShowID,
				JSON:   oo.JSON,
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddParentArgs(cmd, co)
	options.AddOutputArgs(cmd, oo)
	options.AddShowIDArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
