package theme

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Name identifies a user-selectable colour scheme.
type Name string

const (
	System Name = "System"
	Light  Name = "Light"
	Dark   Name = "Dark"
)

// Names lists the schemes in the order the settings tab cycles through them.
var Names = []Name{System, Light, Dark}

// ParseName maps free-form input to a scheme. Unknown values select System.
func ParseName(value string) Name {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return System
	}
}

// Next returns the scheme following n in Names.
func (n Name) Next() Name {
	for i, candidate := range Names {
		if candidate == n {
			return Names[(i+1)%len(Names)]
		}
	}
	return System
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item              *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Placeholder       *lipgloss.Style
	Header            *lipgloss.Style
	Tab               *lipgloss.Style
	ActiveTab         *lipgloss.Style
	Title             *lipgloss.Style
	Heading           *lipgloss.Style
	Caption           *lipgloss.Style
	Success           *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Toast             *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Loading           *lipgloss.Style
	Border            *lipgloss.Style
}

type palette struct {
	text, muted, dim, accent, accentBg, good, bad lipgloss.TerminalColor
}

var (
	darkPalette = palette{
		text:     lipgloss.Color("249"),
		muted:    lipgloss.Color("245"),
		dim:      lipgloss.Color("241"),
		accent:   lipgloss.Color("33"),
		accentBg: lipgloss.Color("238"),
		good:     lipgloss.Color("34"),
		bad:      lipgloss.Color("196"),
	}
	lightPalette = palette{
		text:     lipgloss.Color("236"),
		muted:    lipgloss.Color("240"),
		dim:      lipgloss.Color("247"),
		accent:   lipgloss.Color("25"),
		accentBg: lipgloss.Color("254"),
		good:     lipgloss.Color("28"),
		bad:      lipgloss.Color("160"),
	}
	systemPalette = palette{
		text:     lipgloss.AdaptiveColor{Light: "236", Dark: "249"},
		muted:    lipgloss.AdaptiveColor{Light: "240", Dark: "245"},
		dim:      lipgloss.AdaptiveColor{Light: "247", Dark: "241"},
		accent:   lipgloss.AdaptiveColor{Light: "25", Dark: "33"},
		accentBg: lipgloss.AdaptiveColor{Light: "254", Dark: "238"},
		good:     lipgloss.AdaptiveColor{Light: "28", Dark: "34"},
		bad:      lipgloss.AdaptiveColor{Light: "160", Dark: "196"},
	}
)

func build(p palette) *Styles {
	return &Styles{
		Item:              ptr(lipgloss.NewStyle().Foreground(p.text)),
		ItemIndicator:     ptr(lipgloss.NewStyle().Foreground(p.dim)),
		SelectedItem:      ptr(lipgloss.NewStyle().Foreground(p.accent).Background(p.accentBg).Bold(true)),
		Placeholder:       ptr(lipgloss.NewStyle().Foreground(p.dim).Italic(true)),
		Header:            ptr(lipgloss.NewStyle().Foreground(p.muted).Bold(true)),
		Tab:               ptr(lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)),
		ActiveTab:         ptr(lipgloss.NewStyle().Foreground(p.accent).Background(p.accentBg).Bold(true).Padding(0, 1)),
		Title:             ptr(lipgloss.NewStyle().Foreground(p.accent).Bold(true)),
		Heading:           ptr(lipgloss.NewStyle().Foreground(p.muted).Bold(true).Underline(true)),
		Caption:           ptr(lipgloss.NewStyle().Foreground(p.dim)),
		Success:           ptr(lipgloss.NewStyle().Foreground(p.good)),
		Error:             ptr(lipgloss.NewStyle().Foreground(p.bad).Bold(true)),
		Info:              ptr(lipgloss.NewStyle().Foreground(p.text)),
		Toast:             ptr(lipgloss.NewStyle().Foreground(p.accent).Italic(true)),
		Footer:            ptr(lipgloss.NewStyle().Foreground(p.dim)),
		Filter:            ptr(lipgloss.NewStyle().Foreground(p.text)),
		FilterPrompt:      ptr(lipgloss.NewStyle().Foreground(p.good).Bold(true)),
		FilterPlaceholder: ptr(lipgloss.NewStyle().Foreground(p.dim)),
		Loading:           ptr(lipgloss.NewStyle().Foreground(p.accent).Italic(true)),
		Border:            ptr(lipgloss.NewStyle().Foreground(p.dim)),
	}
}

var (
	systemStyles = build(systemPalette)
	lightStyles  = build(lightPalette)
	darkStyles   = build(darkPalette)

	current atomic.Pointer[Styles]
	active  atomic.Value
)

func init() {
	current.Store(systemStyles)
	active.Store(System)
}

// For returns the style set for the named scheme.
func For(name Name) *Styles {
	switch name {
	case Light:
		return lightStyles
	case Dark:
		return darkStyles
	default:
		return systemStyles
	}
}

// Apply makes the named scheme the live style set. It is idempotent.
func Apply(name Name) {
	current.Store(For(name))
	active.Store(name)
}

// Current exposes the live style set.
func Current() *Styles {
	return current.Load()
}

// Active reports the scheme most recently applied.
func Active() Name {
	return active.Load().(Name)
}

// Default exposes the style set used before any scheme is applied.
func Default() *Styles {
	return systemStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
