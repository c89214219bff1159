// Package picker lets the user choose an alias interactively.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// ErrCanceled is returned when the user leaves without choosing.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeMarker = activeStyle.Render("(active)")
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "switch")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	aliases  []string
	current  string
	cursor   int
	chosen   string
	canceled bool
}

func newModel(aliases []string, current string) model {
	m := model{aliases: aliases, current: current}
	for i, a := range aliases {
		if a == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Quit):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(km, keys.Up):
		m.cursor = (m.cursor - 1 + len(m.aliases)) % len(m.aliases)
	case key.Matches(km, keys.Down):
		m.cursor = (m.cursor + 1) % len(m.aliases)
	case key.Matches(km, keys.Choose):
		m.chosen = m.aliases[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.chosen != "" || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Switch GitHub token"))
	b.WriteString("\n\n")
	for i, a := range m.aliases {
		line := "  " + a
		if i == m.cursor {
			line = cursorStyle.Render("> " + a)
		}
		if a == m.current {
			line += " " + activeMarker
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join([]string{
		keys.Up.Help().Key + " " + keys.Up.Help().Desc,
		keys.Down.Help().Key + " " + keys.Down.Help().Desc,
		keys.Choose.Help().Key + " " + keys.Choose.Help().Desc,
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
	}, " • ")))
	b.WriteString("\n")
	return b.String()
}

// Pick shows aliases with the cursor on current and returns the one the
// user chose. It needs a terminal unless opts redirect input and output.
func Pick(aliases []string, current string, opts ...tea.ProgramOption) (string, error) {
	if len(aliases) == 0 {
		return "", errors.WithHint(errors.New("no aliases to pick from"), "add one with 'set <alias>'")
	}

	final, err := tea.NewProgram(newModel(aliases, current), opts...).Run()
	if err != nil {
		return "", errors.Wrap(err, "running picker")
	}
	m := final.(model)
	if m.canceled || m.chosen == "" {
		return "", ErrCanceled
	}
	return m.chosen, nil
}
