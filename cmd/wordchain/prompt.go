package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/internal/prompt"
)

func (a *app) newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a begin and an end word, then print every shortest chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = prompt.IsTerminal(f)
			}

			p := prompt.New(in, cmd.ErrOrStderr(), a.logger, interactive)
			begin, end, err := p.Words(ctx)
			if err != nil {
				return err
			}

			dict := a.loadDictionary(ctx)
			return a.resolveAndRender(ctx, cmd.OutOrStdout(), dict, begin, end)
		},
	}
}
