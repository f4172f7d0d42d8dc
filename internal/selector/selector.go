package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/cmdy/internal/log"
	"github.com/raphi011/cmdy/internal/snippet"
)

// BuiltinFilter is the filter_command value selecting the embedded
// selector instead of an external subprocess.
const BuiltinFilter = "builtin"

// Runner launches the filter tool with the candidate lines on its stdin
// and returns its captured stdout. ok is false when the tool exited
// non-zero, which means the user cancelled the selection. err is reserved
// for failures to launch or communicate with the tool.
type Runner interface {
	Run(ctx context.Context, name string, args []string, input []byte) (stdout []byte, ok bool, err error)
}

// execRunner runs the filter via os/exec. Stdin is served from the
// prepared candidate buffer and stdout is captured; stderr is inherited
// so full-screen filters like fzf can draw their interface.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string, input []byte) ([]byte, bool, error) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	// Run writes the whole input and collects the whole output before
	// returning, so filters that buffer all of stdin before printing
	// anything cannot deadlock against us.
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit: the user pressed escape or the filter
			// matched nothing. A normal outcome, not a failure.
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to run filter command %q: %w", name, err)
	}

	return stdout.Bytes(), true, nil
}

// queryFlags maps recognized filter tools to the flag that pre-populates
// their search query. Tools not listed here silently ignore the query
// rather than being passed a flag they might reject.
var queryFlags = map[string]string{
	"fzf":  "--query",
	"sk":   "--query",
	"peco": "--query",
	"fzy":  "-q",
}

// Adapter drives the interactive selector for a registry.
type Adapter struct {
	// FilterCommand is the shell command line that launches the filter,
	// or BuiltinFilter for the embedded selector.
	FilterCommand string

	// Query optionally pre-populates the filter's search input.
	Query string

	// Runner launches the external filter. Defaults to os/exec.
	Runner Runner
}

// Select presents the registry's descriptions through the filter and
// returns the chosen snippet. A nil snippet with nil error means the user
// cancelled or the filter produced no choice.
func (a *Adapter) Select(ctx context.Context, reg snippet.Registry) (*snippet.Snippet, error) {
	if a.FilterCommand == BuiltinFilter {
		return selectBuiltin(reg, a.Query)
	}

	fields := strings.Fields(a.FilterCommand)
	if len(fields) == 0 {
		return nil, fmt.Errorf("filter_command is empty")
	}
	name, args := fields[0], fields[1:]

	if a.Query != "" {
		if flag, ok := queryFlags[filepath.Base(name)]; ok {
			args = append(args, flag, a.Query)
		}
	}

	// One candidate line per snippet, in registry order. The line is
	// exactly the description: the echoed choice maps back to a snippet
	// by exact string match, with no ambiguity to parse around.
	var input bytes.Buffer
	for i := range reg {
		input.WriteString(reg[i].Description)
		input.WriteByte('\n')
	}

	runner := a.Runner
	if runner == nil {
		runner = execRunner{}
	}

	log.FromContext(ctx).Command(name, args...)

	stdout, ok, err := runner.Run(ctx, name, args, input.Bytes())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	choice := strings.TrimRight(string(stdout), "\r\n")
	if choice == "" {
		return nil, nil
	}

	chosen, found := reg.FindByDescription(choice)
	if !found {
		// Should not happen given the protocol; guards against a filter
		// that rewrites its input lines.
		return nil, fmt.Errorf("filter returned %q, which matches no snippet", choice)
	}
	return chosen, nil
}
