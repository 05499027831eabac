package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: base.Wrap80("Browse and organize a 3d print model library from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addCreate(topLevel)
	addAttach(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addDelete(topLevel)
	addCover(topLevel)
	addGallery(topLevel)
	addSpools(topLevel)
	addCost(topLevel)
	addStatus(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
