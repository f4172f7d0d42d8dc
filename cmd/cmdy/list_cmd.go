package main

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/cmdy/internal/log"
	"github.com/raphi011/cmdy/internal/output"
	"github.com/raphi011/cmdy/internal/snippet"
)

// snippetDisplay holds snippet info for JSON output
type snippetDisplay struct {
	Description string   `json:"description"`
	Command     string   `json:"command"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source"`
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List snippets without running anything",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  cmdy list                 # all snippets
  cmdy list -t docker       # only snippets tagged "docker"
  cmdy list -s disk         # fuzzy-match descriptions against "disk"
  cmdy list --json          # output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			reg, err := loadFilteredRegistry(ctx)
			if err != nil {
				return err
			}
			filtered := fuzzyFilter(reg, search)

			if jsonOutput {
				// Machine consumers always get a JSON array, an
				// empty result included.
				display := make([]snippetDisplay, len(filtered))
				for i, s := range filtered {
					display[i] = snippetDisplay{
						Description: s.Description,
						Command:     s.Command,
						Tags:        s.Tags,
						Source:      s.SourcePath,
					}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			if len(filtered) == 0 && len(reg) > 0 {
				log.FromContext(ctx).Printf("No snippets matched %q\n", search)
				return nil
			}
			reg = filtered
			if reportEmpty(ctx, reg) {
				return nil
			}

			headers := []string{"DESCRIPTION", "COMMAND", "TAGS", "SOURCE"}
			var rows [][]string
			for _, s := range reg {
				rows = append(rows, []string{
					s.Description,
					s.Command,
					strings.Join(s.Tags, ","),
					filepath.Base(s.SourcePath),
				})
			}
			out.Print(output.RenderTable(headers, rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// registrySource adapts a registry for fuzzy matching on descriptions.
type registrySource snippet.Registry

func (s registrySource) String(i int) string { return s[i].Description }
func (s registrySource) Len() int            { return len(s) }

// fuzzyFilter narrows the registry to snippets whose description fuzzily
// matches the query, best matches first. An empty query keeps registry
// order untouched.
func fuzzyFilter(reg snippet.Registry, query string) snippet.Registry {
	if query == "" {
		return reg
	}
	matches := fuzzy.FindFrom(query, registrySource(reg))
	out := make(snippet.Registry, 0, len(matches))
	for _, m := range matches {
		out = append(out, reg[m.Index])
	}
	return out
}
