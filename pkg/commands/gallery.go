package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shelf/pkg/commands/options"
	"tableflip.dev/shelf/pkg/runner/gallery"
)

func addGallery(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage collection images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newGalleryAddCmd())
	cmd.AddCommand(newGalleryRemoveCmd())
	topLevel.AddCommand(cmd)
}

func newGalleryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection-id> <file>...",
		Short: "Upload images to a collection",
		Example: `
shelf gallery add 1a2b3c hull.jpg deck.jpg
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			a := gallery.Add{
				Client:   d.client,
				TargetID: args[0],
				Paths:    args[1:],
			}
			return a.Do(cmd.Context())
		},
	}
}

func newGalleryRemoveCmd() *cobra.Command {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "rm <collection-id> <filename>",
		Short: "Remove an image from a collection",
		Example: `
shelf gallery rm 1a2b3c hull.jpg --yes
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			r := gallery.Remove{
				Client:   d.client,
				TargetID: args[0],
				Filename: args[1],
				Confirm:  co.Yes,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddConfirmArgs(cmd, co)
	return cmd
}

func addCover(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Manage collection covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCoverSetCmd())
	cmd.AddCommand(newCoverMosaicCmd())
	topLevel.AddCommand(cmd)
}

func newCoverSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <collection-id> <image>",
		Short: "Set the cover image for a collection",
		Example: `
shelf cover set 1a2b3c hull.jpg
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			c := gallery.Cover{
				Client:   d.client,
				TargetID: args[0],
				Image:    args[1],
			}
			return c.Do(cmd.Context())
		},
	}
}

func newCoverMosaicCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "mosaic <collection-id>...",
		Short: "Generate mosaic covers server-side",
		Example: `
shelf cover mosaic 1a2b3c 4d5e6f --force
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			m := gallery.Mosaic{
				Client: d.client,
				IDs:    args,
				Force:  force,
			}
			return m.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when a mosaic already exists.")
	return cmd
}
