package history

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Shell identifies the invoking interactive shell.
type Shell string

const (
	ShellUnknown Shell = "unknown"
	ShellBash    Shell = "bash"
	ShellZsh     Shell = "zsh"
)

// Target is the resolved shell kind and history file path for one
// invocation. Transient, never persisted.
type Target struct {
	Shell Shell
	Path  string
}

// Detect inspects the environment for the invoking shell and resolves its
// history file. The env lookup is injected so detection stays testable
// without ambient global state. $HISTFILE overrides the conventional
// home-directory locations for both shells.
func Detect(getenv func(string) string) Target {
	shell := Shell(filepath.Base(getenv("SHELL")))

	var fallback string
	switch shell {
	case ShellBash:
		fallback = ".bash_history"
	case ShellZsh:
		fallback = ".zsh_history"
	default:
		return Target{Shell: ShellUnknown}
	}

	path := getenv("HISTFILE")
	if path == "" {
		home := getenv("HOME")
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		path = filepath.Join(home, fallback)
	}

	return Target{Shell: shell, Path: path}
}

// extendedPrefix matches the metadata segment of a zsh extended-history
// entry: ": <epoch-seconds>:<duration>;".
var extendedPrefix = regexp.MustCompile(`^: \d+:\d+;`)

// Overwrite replaces the last history entry of the invoking shell with
// the given command line. Best effort: the caller is expected to demote
// any error to a warning, history cosmetics must never block real work.
//
// The invoking shell may not have flushed its own entry for the current
// command yet (many shells flush on the next prompt). The rewrite
// operates on whatever the file contains at call time; that is a
// documented limitation, not something to engineer around.
func Overwrite(getenv func(string) string, command string) error {
	target := Detect(getenv)
	if target.Shell == ShellUnknown {
		return fmt.Errorf("unrecognized shell %q, history not rewritten", getenv("SHELL"))
	}
	return Rewrite(target.Path, command)
}

// Rewrite replaces the command text of the last non-empty line in the
// history file at path. Trailing blank lines are left untouched. Zsh
// extended-history entries keep their timestamp and duration; only the
// text after the metadata prefix is replaced. The file is written back
// via a temp file in the same directory plus rename, so a crash mid-write
// cannot truncate the history.
func Rewrite(path, command string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			last = i
			break
		}
	}
	if last < 0 {
		return fmt.Errorf("history file %s has no entries", path)
	}

	if prefix := extendedPrefix.FindString(lines[last]); prefix != "" {
		lines[last] = prefix + escapeExtended(command)
	} else {
		lines[last] = escapePlain(command)
	}

	return writeAtomic(path, []byte(strings.Join(lines, "\n")))
}

// escapeExtended makes a command valid as a single zsh extended-history
// entry: embedded newlines are continued with a backslash, the way zsh
// itself records multi-line commands.
func escapeExtended(command string) string {
	return strings.ReplaceAll(command, "\n", "\\\n")
}

// escapePlain makes a command valid as a single plain history line.
// Plain files have no continuation syntax, so newlines become command
// separators to keep the entry re-executable as one line.
func escapePlain(command string) string {
	return strings.ReplaceAll(command, "\n", "; ")
}

// writeAtomic writes data to path via a temp file in the same directory
// and a rename, preserving the original file mode.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, mode); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
