package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <thing-url-or-id>",
		Short: "Import a Thingiverse thing as a collection",
		Example: `
shelf import https://www.thingiverse.com/thing:763622
shelf import thing:763622
shelf import 763622
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			i := importer.Import{
				Client:     d.client,
				Reconciler: d.reconciler,
				Reference:  args[0],
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
