package history

import (
	"os"
	"path/filepath"
	"testing"
)

// envMap returns a getenv func backed by a map.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       map[string]string
		wantShell Shell
		wantPath  string
	}{
		{
			name:      "bash with default histfile",
			env:       map[string]string{"SHELL": "/bin/bash", "HOME": "/home/u"},
			wantShell: ShellBash,
			wantPath:  "/home/u/.bash_history",
		},
		{
			name:      "zsh with default histfile",
			env:       map[string]string{"SHELL": "/usr/bin/zsh", "HOME": "/home/u"},
			wantShell: ShellZsh,
			wantPath:  "/home/u/.zsh_history",
		},
		{
			name:      "HISTFILE override wins",
			env:       map[string]string{"SHELL": "/bin/zsh", "HOME": "/home/u", "HISTFILE": "/home/u/.config/zsh/hist"},
			wantShell: ShellZsh,
			wantPath:  "/home/u/.config/zsh/hist",
		},
		{
			name:      "fish is unknown",
			env:       map[string]string{"SHELL": "/usr/bin/fish", "HOME": "/home/u"},
			wantShell: ShellUnknown,
		},
		{
			name:      "empty SHELL is unknown",
			env:       map[string]string{"HOME": "/home/u"},
			wantShell: ShellUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detect(envMap(tt.env))
			if got.Shell != tt.wantShell {
				t.Errorf("Shell = %q, want %q", got.Shell, tt.wantShell)
			}
			if tt.wantPath != "" && got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}

func writeHistory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	t.Run("plain one-line file", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "ls -la\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if got := readFile(t, path); got != "echo hi\n" {
			t.Errorf("file = %q, want %q", got, "echo hi\n")
		}
	})

	t.Run("only the last line is replaced", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "cd /tmp\nmake test\ncmdy\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		want := "cd /tmp\nmake test\necho hi\n"
		if got := readFile(t, path); got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("zsh extended entry keeps timestamp and duration", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, ": 1700000000:0;ls -la\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		want := ": 1700000000:0;echo hi\n"
		if got := readFile(t, path); got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("extended detection only probes the last line", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, ": 1600000000:2;make\n: 1700000000:0;cmdy\n")
		if err := Rewrite(path, "git status"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		want := ": 1600000000:2;make\n: 1700000000:0;git status\n"
		if got := readFile(t, path); got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("plain zsh file treated like bash", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "ls\ncmdy\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if got := readFile(t, path); got != "ls\necho hi\n" {
			t.Errorf("file = %q, want %q", got, "ls\necho hi\n")
		}
	})

	t.Run("trailing blank lines are ignored not replaced", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "ls -la\n\n\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if got := readFile(t, path); got != "echo hi\n\n\n" {
			t.Errorf("file = %q, want %q", got, "echo hi\n\n\n")
		}
	})

	t.Run("multi-line command stays one extended entry", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, ": 1700000000:0;ls\n")
		if err := Rewrite(path, "echo a\necho b"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		want := ": 1700000000:0;echo a\\\necho b\n"
		if got := readFile(t, path); got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("multi-line command joined in plain files", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "ls\n")
		if err := Rewrite(path, "echo a\necho b"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if got := readFile(t, path); got != "echo a; echo b\n" {
			t.Errorf("file = %q, want %q", got, "echo a; echo b\n")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		err := Rewrite(filepath.Join(t.TempDir(), "absent"), "echo hi")
		if err == nil {
			t.Error("Rewrite of missing file succeeded, want error")
		}
	})

	t.Run("empty file is an error", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "")
		if err := Rewrite(path, "echo hi"); err == nil {
			t.Error("Rewrite of empty file succeeded, want error")
		}
	})

	t.Run("no temp file left behind", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "ls\n")
		if err := Rewrite(path, "echo hi"); err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
			t.Error("temp file left behind after rewrite")
		}
	})
}

func TestOverwrite(t *testing.T) {
	t.Parallel()

	t.Run("rewrites via detected target", func(t *testing.T) {
		t.Parallel()
		path := writeHistory(t, "cmdy\n")
		env := envMap(map[string]string{"SHELL": "/bin/zsh", "HISTFILE": path})

		if err := Overwrite(env, "echo hi"); err != nil {
			t.Fatalf("Overwrite failed: %v", err)
		}
		if got := readFile(t, path); got != "echo hi\n" {
			t.Errorf("file = %q, want %q", got, "echo hi\n")
		}
	})

	t.Run("unknown shell is an error for the caller to demote", func(t *testing.T) {
		t.Parallel()
		env := envMap(map[string]string{"SHELL": "/usr/bin/fish"})
		if err := Overwrite(env, "echo hi"); err == nil {
			t.Error("Overwrite with unknown shell succeeded, want error")
		}
	})
}
