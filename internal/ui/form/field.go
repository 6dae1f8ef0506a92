package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/theme"
)

type field interface {
	Label() string
	Focus() tea.Cmd
	Blur()
	Update(tea.Msg) tea.Cmd
	View() string
	Multiline() bool
	SetWidth(int)
}

type inputField struct {
	label string
	input textinput.Model
}

func newInput(label, placeholder, value string) *inputField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.SetValue(value)
	return &inputField{label: label, input: ti}
}

func (f *inputField) Label() string   { return f.label }
func (f *inputField) Focus() tea.Cmd  { return f.input.Focus() }
func (f *inputField) Blur()           { f.input.Blur() }
func (f *inputField) View() string    { return f.input.View() }
func (f *inputField) Multiline() bool { return false }
func (f *inputField) Value() string   { return strings.TrimSpace(f.input.Value()) }

func (f *inputField) SetWidth(w int) {
	f.input.Width = w
}

func (f *inputField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

type areaField struct {
	label string
	area  textarea.Model
}

func newArea(label, placeholder, value string, height int) *areaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(height)
	ta.SetValue(value)
	ta.Blur()
	return &areaField{label: label, area: ta}
}

func (f *areaField) Label() string   { return f.label }
func (f *areaField) Focus() tea.Cmd  { return f.area.Focus() }
func (f *areaField) Blur()           { f.area.Blur() }
func (f *areaField) View() string    { return f.area.View() }
func (f *areaField) Multiline() bool { return true }
func (f *areaField) Value() string   { return f.area.Value() }

func (f *areaField) SetWidth(w int) {
	f.area.SetWidth(w)
}

func (f *areaField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

type toggleField struct {
	label   string
	on      bool
	focused bool
}

func (f *toggleField) Label() string   { return f.label }
func (f *toggleField) Focus() tea.Cmd  { f.focused = true; return nil }
func (f *toggleField) Blur()           { f.focused = false }
func (f *toggleField) Multiline() bool { return false }
func (f *toggleField) SetWidth(int)    {}

func (f *toggleField) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && (key.Type == tea.KeySpace || key.String() == "x") {
		f.on = !f.on
	}
	return nil
}

func (f *toggleField) View() string {
	if f.on {
		return "[x]"
	}
	return "[ ]"
}

type action int

const (
	actionNone action = iota
	actionSubmit
	actionCancel
)

// base carries focus handling and layout shared by every dialog.
type base struct {
	title  string
	help   string
	fields []field
	focus  int
	err    string
	width  int
}

func (b *base) init() tea.Cmd {
	for _, f := range b.fields {
		f.Blur()
	}
	b.focus = 0
	return b.fields[0].Focus()
}

func (b *base) move(delta int) tea.Cmd {
	b.fields[b.focus].Blur()
	b.focus = (b.focus + delta + len(b.fields)) % len(b.fields)
	return b.fields[b.focus].Focus()
}

// route handles navigation keys and forwards the rest to the focused field.
func (b *base) route(msg tea.Msg) (tea.Cmd, action) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return nil, actionCancel
		case "ctrl+s":
			return nil, actionSubmit
		case "tab":
			return b.move(1), actionNone
		case "shift+tab":
			return b.move(-1), actionNone
		case "enter":
			if !b.fields[b.focus].Multiline() {
				return nil, actionSubmit
			}
		}
	}
	return b.fields[b.focus].Update(msg), actionNone
}

// SetWidth sizes every field to fit a dialog of width w.
func (b *base) SetWidth(w int) {
	b.width = w
	inner := w - 4
	if inner < 10 {
		inner = 10
	}
	for _, f := range b.fields {
		f.SetWidth(inner)
	}
}

// SetCursorMode applies mode to every text field. It must run before Init
// for static cursors to suppress the blink command.
func (b *base) SetCursorMode(mode cursor.Mode) {
	for _, f := range b.fields {
		switch f := f.(type) {
		case *inputField:
			f.input.Cursor.SetMode(mode)
		case *areaField:
			f.area.Cursor.SetMode(mode)
		}
	}
}

func (b *base) Title() string { return b.title }
func (b *base) Error() string { return b.err }

// View renders the dialog body.
func (b *base) View() string {
	styles := theme.Current()
	lines := []string{styles.Title.Render(b.title), ""}
	for i, f := range b.fields {
		label := f.Label()
		if i == b.focus {
			label = styles.SelectedItem.Render(label)
		} else {
			label = styles.Header.Render(label)
		}
		if f.Multiline() {
			lines = append(lines, label, f.View())
		} else {
			lines = append(lines, label+": "+f.View())
		}
	}
	if b.err != "" {
		lines = append(lines, "", styles.Error.Render(b.err))
	}
	lines = append(lines, "", styles.Footer.Render(b.help))
	return strings.Join(lines, "\n")
}

func splitTags(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
