package main

import (
	"context"
	"strings"

	"github.com/raphi011/cmdy/internal/log"
	"github.com/raphi011/cmdy/internal/selector"
	"github.com/raphi011/cmdy/internal/snippet"
)

// loadFilteredRegistry loads snippets from the effective search
// directories and applies the requested tag filter.
func loadFilteredRegistry(ctx context.Context) (snippet.Registry, error) {
	l := log.FromContext(ctx)

	dirs, err := cfg.SnippetDirs(dirFlags)
	if err != nil {
		return nil, err
	}
	l.Debug("loading snippets", "dirs", len(dirs), "tags", len(tagFlags))

	reg, err := snippet.Load(dirs)
	if err != nil {
		return nil, err
	}
	return reg.FilterByTags(tagFlags), nil
}

// reportEmpty prints a hint and returns true when the registry holds no
// snippets. An empty registry is a clean exit, not an error.
func reportEmpty(ctx context.Context, reg snippet.Registry) bool {
	if len(reg) > 0 {
		return false
	}
	l := log.FromContext(ctx)

	if len(tagFlags) > 0 {
		l.Printf("No snippets found matching tag(s): %s\n", strings.Join(tagFlags, ", "))
		return true
	}

	dirs, err := cfg.SnippetDirs(dirFlags)
	if err != nil || len(dirs) == 0 {
		l.Println("No snippets found.")
		return true
	}
	l.Printf("No snippets found in: %s\n", strings.Join(dirs, ", "))
	l.Println("Create *.toml files there containing [[commands]] entries, for example:")
	l.Println()
	l.Println("  [[commands]]")
	l.Println("  description = \"list files by size\"")
	l.Println("  command = \"du -sh * | sort -h\"")
	return true
}

// chooseSnippet runs the configured selector over the registry.
// A nil snippet means the user cancelled.
func chooseSnippet(ctx context.Context, reg snippet.Registry) (*snippet.Snippet, error) {
	sel := selector.Adapter{
		FilterCommand: cfg.FilterCommand,
		Query:         search,
	}
	return sel.Select(ctx, reg)
}
