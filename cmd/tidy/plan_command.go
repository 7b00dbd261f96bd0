package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan <directory>",
		Short: "Show the moves an organize run would perform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.newEngine()
			if err != nil {
				return err
			}

			p, err := eng.Plan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, p)
			}
			out := cmd.OutOrStdout()
			if p.IsEmpty() {
				fmt.Fprintf(out, "Nothing to organize in %s\n", p.TargetDir)
				return nil
			}
			renderPlan(out, p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")
	return cmd
}
