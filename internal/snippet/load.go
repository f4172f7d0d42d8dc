package snippet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"
)

// fileDef is the on-disk shape of a snippet file: a table containing an
// array of [[commands]] entries.
type fileDef struct {
	Commands []entryDef `toml:"commands"`
}

type entryDef struct {
	Description string   `toml:"description"`
	Command     string   `toml:"command"`
	Tags        []string `toml:"tags"`
}

// Load scans the given directories (non-recursively, in order) for *.toml
// snippet files and merges them into one validated Registry.
//
// A directory that does not exist is skipped, supporting optional synced
// folders, and so is a search entry that is not a directory at all.
// A file that parses but contains no [[commands]] array is
// skipped silently. A file that fails to parse at all, an entry missing
// description or command, or a duplicate description anywhere in the
// merged result is a fatal load error.
func Load(dirs []string) (Registry, error) {
	var reg Registry
	// description -> source file, for duplicate reporting
	seen := make(map[string]string)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Missing entries and entries that turn out to be plain
			// files are skipped, not fatal.
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return nil, fmt.Errorf("failed to read snippet directory %s: %w", dir, err)
		}

		// os.ReadDir sorts by filename, giving the lexical
		// file-within-directory order the registry promises.
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			loaded, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			for _, s := range loaded {
				if existing, dup := seen[s.Description]; dup {
					return nil, fmt.Errorf(
						"duplicate snippet description %q\n  defined in: %s\n  also defined in: %s",
						s.Description, s.SourcePath, existing)
				}
				seen[s.Description] = s.SourcePath
				reg = append(reg, s)
			}
		}
	}

	return reg, nil
}

func loadFile(path string) ([]Snippet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snippet file %s: %w", path, err)
	}

	var def fileDef
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Not every TOML file in a snippets directory is a snippet file.
	if len(def.Commands) == 0 {
		return nil, nil
	}

	snippets := make([]Snippet, 0, len(def.Commands))
	for i, e := range def.Commands {
		if e.Description == "" {
			return nil, fmt.Errorf("%s: entry %d is missing a description", path, i+1)
		}
		if e.Command == "" {
			return nil, fmt.Errorf("%s: entry %d (%q) is missing a command", path, i+1, e.Description)
		}
		snippets = append(snippets, Snippet{
			Description: e.Description,
			Command:     e.Command,
			Tags:        e.Tags,
			SourcePath:  path,
		})
	}
	return snippets, nil
}
