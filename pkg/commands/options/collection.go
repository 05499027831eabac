// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CollectionOptions captures common collection selection flags for commands.
type CollectionOptions struct {
	ID     string
	Parent string
}

// AddIDArgs wires the --id flag on the provided command.
func AddIDArgs(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of a collection.")
}

// AddParentArgs wires the --parent flag on the provided command.
func AddParentArgs(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVarP(&o.Parent, "parent", "p", "",
		"Specify the parent collection id.")
}
