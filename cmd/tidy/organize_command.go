package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tidy/internal/engine"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Classify and move the files in a directory into category folders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.newEngine()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rep, err := eng.OrganizeDirectory(runCtx, args[0], engine.Options{DryRun: dryRun})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, rep)
			}
			renderReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build and print the plan without moving anything")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}
