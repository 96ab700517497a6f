package commands

import (
	"fmt"

	"github.com/mfraile/PyOxidizer/internal/app"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Evaluate a configuration script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.EvalOptions{}
			if len(args) == 1 {
				opts.Script = args[0]
			}
			opts.BuildTarget, _ = cmd.Flags().GetString("target")

			result, err := c.components.App.Evaluate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, exe := range result.Executables {
				_, _ = fmt.Fprintf(out, "%s (%s): %d resources, %d extension modules, policy %s\n",
					exe.Params.Name,
					exe.Params.TargetTriple,
					len(exe.Resources),
					len(exe.ExtensionModules),
					exe.Params.ResourcesPolicy,
				)
			}
			return nil
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target triple exposed as BUILD_TARGET_TRIPLE (default "+domain.HostTriple()+")")
	return cmd
}
