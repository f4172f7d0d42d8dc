package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/cmdy/internal/config"
	"github.com/raphi011/cmdy/internal/log"
)

const exampleSnippets = `# cmdy snippet file. Any *.toml file in this directory with a
# [[commands]] array is picked up.

[[commands]]
description = "list files by size"
command = "du -sh * | sort -h"
tags = ["files"]

[[commands]]
description = "show listening ports"
command = "ss -tlnp"
tags = ["network"]
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file and an example snippet file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			l.Printf("Created config file: %s\n", path)

			dir, err := config.DefaultSnippetDir()
			if err != nil {
				return fmt.Errorf("resolve snippet directory: %w", err)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create snippet directory: %w", err)
			}

			example := filepath.Join(dir, "example.toml")
			if _, err := os.Stat(example); err == nil && !force {
				l.Printf("Example snippet file already exists: %s\n", example)
				return nil
			}
			if err := os.WriteFile(example, []byte(exampleSnippets), 0644); err != nil {
				return fmt.Errorf("write example snippet file: %w", err)
			}
			l.Printf("Created example snippet file: %s\n", example)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}
