package selector

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/cmdy/internal/snippet"
)

type snippetItem struct {
	description string
	index       int
}

func (i snippetItem) Title() string       { return i.description }
func (i snippetItem) Description() string { return "" }
func (i snippetItem) FilterValue() string { return i.description }

type builtinModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m builtinModel) Init() tea.Cmd {
	return nil
}

func (m builtinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(snippetItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m builtinModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// selectBuiltin shows the embedded list selector for registries where no
// external filter tool is configured. Returns nil, nil on cancellation.
func selectBuiltin(reg snippet.Registry, query string) (*snippet.Snippet, error) {
	if len(reg) == 0 {
		return nil, nil
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil, fmt.Errorf("the builtin selector requires a terminal")
	}

	items := make([]list.Item, len(reg))
	for i := range reg {
		items[i] = snippetItem{description: reg[i].Description, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	l := list.New(items, delegate, 60, min(len(items)+6, 20))
	l.Title = "Select a snippet"
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	if query != "" {
		l.SetFilterText(query)
	}

	model := builtinModel{
		list:     l,
		selected: -1,
	}

	// Render to stderr so stdout stays clean for piping; detect the color
	// profile for that stream (handles NO_COLOR, dumb terminals, etc.).
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := finalModel.(builtinModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(reg) {
		return nil, nil
	}
	return &reg[m.selected], nil
}
