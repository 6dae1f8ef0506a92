package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

// Confirm asks a yes/no question before submitting ev.
type Confirm struct {
	prompt string
	ev     any
}

func NewConfirm(prompt string, ev any) *Confirm {
	return &Confirm{prompt: prompt, ev: ev}
}

func (c *Confirm) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		return event.Enqueue(c.ev), true, false
	case "n", "N", "esc", "q":
		return nil, false, true
	}
	return nil, false, false
}

func (c *Confirm) View() string {
	styles := theme.Current()
	return styles.Title.Render(c.prompt) + "\n\n" + styles.Footer.Render("y/enter: confirm · n/esc: cancel")
}
