package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the pipeline as a container build file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output) //nolint:gosec // output path is provided by user
				if err != nil {
					return err
				}
				defer f.Close() //nolint:errcheck // Best effort close in defer
				w = f
			}

			return c.app.Export(w, c.projectRoot(cmd))
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	return cmd
}
