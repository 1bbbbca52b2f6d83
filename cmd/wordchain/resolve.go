package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <begin> <end>",
		Short: "Print every shortest chain from begin to end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dict := a.loadDictionary(ctx)
			return a.resolveAndRender(ctx, cmd.OutOrStdout(), dict, args[0], args[1])
		},
	}
}
