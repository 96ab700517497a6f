package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDistributionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distributions",
		Short: "List known or resolved Python distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if resolved, _ := cmd.Flags().GetBool("resolved"); resolved {
				records, err := c.components.App.ResolvedDistributions()
				if err != nil {
					return err
				}
				for _, r := range records {
					_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.Flavor, r.Version, r.Path, r.Source)
				}
				return nil
			}

			for _, e := range c.components.App.KnownDistributions() {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", e.Flavor, e.Triple, e.Location.Source())
			}
			return nil
		},
	}
	cmd.Flags().Bool("resolved", false, "List distributions extracted on this machine")
	return cmd
}
