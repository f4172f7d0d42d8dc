package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFilterCommand is the interactive filter used when none is configured.
// The options give fzf ANSI support, a reverse layout, a rounded border and
// half-screen height.
const DefaultFilterCommand = "fzf --ansi --layout=reverse --border=rounded --height=50%"

// Config holds the effective cmdy configuration: compiled defaults overlaid
// with the global config file. CLI flags are applied field-by-field on top
// by the commands and always win.
type Config struct {
	// FilterCommand launches the interactive selector. The special value
	// "builtin" uses the embedded selector instead of a subprocess.
	FilterCommand string `toml:"filter_command"`

	// Directories are extra snippet directories scanned after the default
	// one. Listed in search order.
	Directories []string `toml:"directories"`

	// OverwriteShellCommand rewrites the invoking shell's last history
	// entry with the executed snippet's command line.
	OverwriteShellCommand bool `toml:"overwrite_shell_command"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		FilterCommand: DefaultFilterCommand,
	}
}

// Path returns the path to the global config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cmdy", "config.toml"), nil
}

// DefaultSnippetDir returns the primary snippet directory.
func DefaultSnippetDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cmdy", "commands"), nil
}

// Load reads config from ~/.config/cmdy/config.toml.
// Returns Default() if the file doesn't exist (no error).
// A file that exists but fails to parse is a fatal error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), fmt.Errorf("failed to locate config file: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads config from the given path, layering it over Default().
// Unknown keys are ignored for forward compatibility.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// A file setting filter_command = "" falls back to the default rather
	// than configuring an unlaunchable selector.
	if cfg.FilterCommand == "" {
		cfg.FilterCommand = DefaultFilterCommand
	}

	return cfg, nil
}

// SnippetDirs resolves the ordered snippet search list. When --dir flags
// are given they replace the list wholesale; otherwise the default
// directory is searched first, followed by configured extras. Duplicates
// are removed, order preserved, ~ expanded.
func (c *Config) SnippetDirs(flagDirs []string) ([]string, error) {
	var dirs []string
	if len(flagDirs) > 0 {
		dirs = flagDirs
	} else {
		primary, err := DefaultSnippetDir()
		if err != nil {
			return nil, fmt.Errorf("resolve snippet directory: %w", err)
		}
		dirs = append([]string{primary}, c.Directories...)
	}

	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		expanded, err := expandPath(d)
		if err != nil {
			return nil, err
		}
		if expanded == "" || seen[expanded] {
			continue
		}
		seen[expanded] = true
		out = append(out, expanded)
	}
	return out, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

const defaultConfig = `# cmdy configuration

# Command used for interactive filtering.
# The snippet descriptions are written to its stdin, one per line; the
# line it prints on stdout is the chosen snippet.
# Set to "builtin" to use the embedded selector instead of a subprocess.
# filter_command = "fzf --ansi --layout=reverse --border=rounded --height=50%"

# Extra directories to scan (non-recursively) for *.toml snippet files.
# Scanned after ~/.config/cmdy/commands, in order. Directories that don't
# exist are skipped, so shared/synced folders are fine here.
# directories = ["~/Sync/cmdy"]

# Rewrite the invoking shell's last history entry with the executed
# snippet's command, so it shows up in history as if typed directly.
# Best effort: bash and zsh only, and timing depends on when your shell
# flushes its own history.
# overwrite_shell_command = true
`

// Init creates a default config file at ~/.config/cmdy/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
