// Package action dispatches a chosen snippet to one of the supported
// actions: run, dry-run, clip, edit.
//
// Errors here are scoped to the single action being performed (a failing
// clipboard aborts clip, nothing else); history rewrite failures are
// demoted to warnings before they can propagate.
package action

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/raphi011/cmdy/internal/history"
	"github.com/raphi011/cmdy/internal/log"
	"github.com/raphi011/cmdy/internal/output"
	"github.com/raphi011/cmdy/internal/snippet"
)

// Run executes the snippet's command line under the user's shell,
// replacing this process image so the shell's own history write for the
// launcher invocation is not duplicated by a child entry.
//
// When overwriteHistory is set, the shell history rewrite runs first.
// Its failures downgrade to a warning: history cosmetics must never
// block real work.
func Run(ctx context.Context, snip *snippet.Snippet, overwriteHistory bool) error {
	l := log.FromContext(ctx)

	if overwriteHistory {
		if err := history.Overwrite(os.Getenv, snip.Command); err != nil {
			l.Printf("Warning: %v\n", err)
		}
	}

	l.Command("sh", "-c", snip.Command)

	sh, err := exec.LookPath("sh")
	if err != nil {
		return fmt.Errorf("failed to locate sh: %w", err)
	}

	// Exec-style replacement: only returns on failure.
	if err := syscall.Exec(sh, []string{"sh", "-c", snip.Command}, os.Environ()); err != nil {
		l.Debug("exec failed, falling back to subprocess", "error", err)
	}

	cmd := exec.CommandContext(ctx, sh, "-c", snip.Command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("snippet %q failed: %w", snip.Description, err)
	}
	return nil
}

// DryRun prints the resolved command string without invoking a subshell.
func DryRun(ctx context.Context, snip *snippet.Snippet) {
	output.FromContext(ctx).Println(snip.Command)
}

// Clip sends the snippet's command line to the system clipboard.
// A clipboard backend failure is fatal for this action, with no fallback.
func Clip(ctx context.Context, snip *snippet.Snippet) error {
	if err := clipboard.WriteAll(snip.Command); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	log.FromContext(ctx).Println("Copied command to clipboard")
	return nil
}

// Edit opens the snippet's source file in the user's editor. The env
// lookup is injected; an unset EDITOR is fatal for this action.
func Edit(ctx context.Context, getenv func(string) string, snip *snippet.Snippet) error {
	editor := getenv("EDITOR")
	if editor == "" {
		return fmt.Errorf("EDITOR is not set")
	}

	log.FromContext(ctx).Command(editor, snip.SourcePath)

	cmd := exec.CommandContext(ctx, editor, snip.SourcePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s in %s: %w", snip.SourcePath, editor, err)
	}
	return nil
}
