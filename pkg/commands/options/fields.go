package options

import (
	"github.com/spf13/cobra"
)

// FieldOptions carries the editable collection fields as flags. Whether a
// flag was actually set is decided with cmd.Flags().Changed so an empty
// string can still mean "clear this field".
type FieldOptions struct {
	Name        string
	Category    string
	Description string
	Tags        []string
	Parent      string
}

func AddFieldArgs(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Collection name.")
	cmd.Flags().StringVar(&o.Category, "category", "", "Collection category.")
	cmd.Flags().StringVar(&o.Description, "description", "", "Collection description.")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil, "Collection tag, repeatable.")
	cmd.Flags().StringVar(&o.Parent, "parent", "", "Parent collection id, empty for root.")
}
