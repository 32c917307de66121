package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the provisioning pipeline and emit the image config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), c.projectRoot(cmd), force)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Rebuild every layer, ignoring the cache")
	return cmd
}
