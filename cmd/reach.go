// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReachCommand creates the reach command.
func NewReachCommand(rootOpts *RootOptions) *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:           "reach <file>",
		Short:         "List the states reachable from the initial state",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.encode(args[0])
			if err != nil {
				return err
			}
			defer rootOpts.done(e)
			states := e.Decode(e.Reachable())
			if count {
				fmt.Fprintf(cmd.OutOrStdout(), "%d/%d\n", len(states), len(e.States()))
				return nil
			}
			for _, q := range states {
				fmt.Fprintln(cmd.OutOrStdout(), q)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "only print the number of reachable states")
	return cmd
}
