package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cmdy/internal/action"
	"github.com/raphi011/cmdy/internal/log"
)

func newClipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clip",
		Short: "Copy the selected snippet's command to the clipboard",
		Args:  cobra.NoArgs,
		Example: `  cmdy clip            # select a snippet, copy its command
  cmdy clip -t docker  # only snippets tagged "docker"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := loadFilteredRegistry(ctx)
			if err != nil {
				return err
			}
			if reportEmpty(ctx, reg) {
				return nil
			}

			snip, err := chooseSnippet(ctx, reg)
			if err != nil {
				return err
			}
			if snip == nil {
				log.FromContext(ctx).Println("No selection made.")
				return nil
			}

			return action.Clip(ctx, snip)
		},
	}
}
