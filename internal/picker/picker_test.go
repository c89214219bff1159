package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m model, msgs ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestCursorStartsOnCurrent(t *testing.T) {
	m := newModel([]string{"work", "personal", "acme"}, "personal")
	assert.Equal(t, 1, m.cursor)

	m = newModel([]string{"work", "personal"}, "")
	assert.Equal(t, 0, m.cursor)
}

func TestChooseAfterMoving(t *testing.T) {
	m := newModel([]string{"work", "personal", "acme"}, "work")

	m, cmd := press(t, m, down, down, enter)
	assert.Equal(t, "acme", m.chosen)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCursorWraps(t *testing.T) {
	m := newModel([]string{"work", "personal", "acme"}, "work")

	m, _ = press(t, m, up)
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, down)
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.cursor)
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m, cmd := press(t, newModel([]string{"work", "personal"}, ""), msg)
		assert.True(t, m.canceled, msg.String())
		assert.Empty(t, m.chosen)
		assert.NotNil(t, cmd)
	}
}

func TestView(t *testing.T) {
	m := newModel([]string{"work", "personal"}, "personal")
	view := m.View()
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "personal")
	assert.Contains(t, view, "(active)")

	m, _ = press(t, m, enter)
	assert.Empty(t, m.View())
}

func TestPickWithoutAliases(t *testing.T) {
	_, err := Pick(nil, "")
	assert.Error(t, err)
}
