package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cmdy/internal/action"
	"github.com/raphi011/cmdy/internal/log"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the selected snippet's file in your $EDITOR",
		Args:  cobra.NoArgs,
		Example: `  cmdy edit            # select a snippet, open its TOML file
  cmdy edit -t files   # only snippets tagged "files"`,
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

			return action.Edit(ctx, os.Getenv, snip)
		},
	}
}
