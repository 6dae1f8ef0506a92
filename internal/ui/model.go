package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/data/dispatcher"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
	"github.com/atomicstack/cookbook-tui/internal/state"
	uistate "github.com/atomicstack/cookbook-tui/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	toastTTL      = 4 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// dialog is a modal widget. Update reports done once it submitted and
// cancel once it was dismissed; either closes it.
type dialog interface {
	Update(tea.Msg) (cmd tea.Cmd, done bool, cancel bool)
	View() string
}

type toastExpiredMsg struct {
	seq int
}

// Options configures a Model.
type Options struct {
	Width  int
	Height int
	Footer bool
}

// Model is the Bubble Tea model for the cookbook.
type Model struct {
	app        *state.App
	dispatcher *dispatcher.Dispatcher
	handlers   map[reflect.Type]msgHandler

	lists   map[state.Region]*uistate.List
	details map[state.Region]string
	detail  viewport.Model
	shown   state.Region
	renders map[state.Region]int
	// refresh forces the visible detail to rebuild on the next reconcile.
	refresh bool

	search    map[state.Tab]*textinput.Model
	searching bool

	settingsCursor int
	dirInput       textinput.Model
	editingDir     bool

	dialog dialog

	spinner      spinner.Model
	spinning     bool
	help         help.Model
	keys         keyMap
	footer       bool
	toastSeq     int
	toastVisible bool

	width  int
	height int
	timers bool
}

// NewModel wires a model around app. The first reconcile runs here so the
// initial view already shows placeholders.
func NewModel(app *state.App, d *dispatcher.Dispatcher, opts Options) *Model {
	if app == nil {
		app = state.New(nil, "")
	}
	if d == nil {
		d = dispatcher.New(nil, nil, nil)
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m := &Model{
		app:        app,
		dispatcher: d,
		lists: map[state.Region]*uistate.List{
			state.RegionRecipeList: {},
			state.RegionPantryList: {},
			state.RegionKBList:     {},
		},
		details: map[state.Region]string{},
		renders: map[state.Region]int{},
		search: map[state.Tab]*textinput.Model{
			state.TabRecipes: newSearchInput("search recipes"),
			state.TabPantry:  newSearchInput("search ingredients"),
			state.TabKB:      newSearchInput("search articles"),
		},
		dirInput: newDirInput(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		keys:     defaultKeyMap(),
		footer:   opts.Footer,
		width:    width,
		height:   height,
		timers:   true,
	}
	m.detail = viewport.New(m.detailWidth(), m.bodyHeight())
	m.registerHandlers()
	m.reconcile()
	return m
}

func newSearchInput(placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	return &ti
}

func newDirInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "~/cookbook"
	ti.CharLimit = 512
	return ti
}

// App exposes the application state the model drives.
func (m *Model) App() *state.App {
	return m.app
}

// Init starts the initial load when a data directory is configured.
func (m *Model) Init() tea.Cmd {
	if m.app.DataDir == "" {
		return nil
	}
	return event.Enqueue(event.Reload{})
}

// Update handles one message: the matching handler runs the transition,
// then finishUpdate reconciles the view before the next message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if handled, cmd := m.handleDialog(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if cmd := m.updateInputs(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTick,
		reflect.TypeOf(toastExpiredMsg{}):   m.handleToastExpired,
	}
	domain := []any{
		event.SwitchTab{},
		event.SearchRecipes{},
		event.SearchIngredients{},
		event.ToggleInStockOnly{},
		event.SetCategoryFilter{},
		event.SearchKB{},
		event.SelectRecipe{},
		event.SelectIngredient{},
		event.SelectKB{},
		event.AddRecipe{},
		event.AddIngredient{},
		event.EditRecipe{},
		event.EditIngredient{},
		event.SaveRecipe{},
		event.SaveIngredient{},
		event.DeleteRecipe{},
		event.DeleteIngredient{},
		event.SetDataDir{},
		event.Reload{},
		event.DataDirReady{},
		event.SetTheme{},
		event.ShowToast{},
	}
	for _, ev := range domain {
		m.handlers[reflect.TypeOf(ev)] = m.dispatch
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.reconcile(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// dispatch applies one domain event through the transition function.
func (m *Model) dispatch(ev tea.Msg) tea.Cmd {
	events.Event.Handle(fmt.Sprintf("%T", ev))
	m.refresh = true
	cmds := []tea.Cmd{m.dispatcher.Handle(m.app, ev)}
	switch ev.(type) {
	case event.ShowToast:
		cmds = append(cmds, m.showToast())
	case event.SwitchTab:
		m.searching = false
		m.blurSearch()
	}
	if m.app.Loading() && !m.spinning && m.timers {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) showToast() tea.Cmd {
	m.toastSeq++
	m.toastVisible = true
	if !m.timers {
		return nil
	}
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) handleToastExpired(msg tea.Msg) tea.Cmd {
	if expired := msg.(toastExpiredMsg); expired.seq == m.toastSeq {
		m.toastVisible = false
	}
	return nil
}

func (m *Model) handleSpinnerTick(msg tea.Msg) tea.Cmd {
	if !m.app.Loading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.resize()
	return nil
}

func (m *Model) resize() {
	m.refresh = true
	m.detail.Width = m.detailWidth()
	m.detail.Height = m.bodyHeight()
	m.help.Width = m.width
	if resizer, ok := m.dialog.(interface{ SetWidth(int) }); ok {
		resizer.SetWidth(m.dialogWidth())
	}
}

// handleDialog routes keys and widget messages to the open dialog. Domain
// events still reach the transition function.
func (m *Model) handleDialog(msg tea.Msg) (bool, tea.Cmd) {
	if m.dialog == nil {
		return false, nil
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	cmd, done, cancel := m.dialog.Update(msg)
	if done || cancel {
		m.dialog = nil
	}
	return true, cmd
}

// openDialog shows d, focusing its first field.
func (m *Model) openDialog(d dialog) tea.Cmd {
	if resizer, ok := d.(interface{ SetWidth(int) }); ok {
		resizer.SetWidth(m.dialogWidth())
	}
	if !m.timers {
		if static, ok := d.(interface{ SetCursorMode(cursor.Mode) }); ok {
			static.SetCursorMode(cursor.CursorStatic)
		}
	}
	m.dialog = d
	if initer, ok := d.(interface{ Init() tea.Cmd }); ok {
		return initer.Init()
	}
	return nil
}

// updateInputs forwards widget messages such as cursor blinks to the
// focused text input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.editingDir:
		m.dirInput, cmd = m.dirInput.Update(msg)
	case m.searching:
		if input := m.search[m.app.Tab]; input != nil {
			*input, cmd = input.Update(msg)
		}
	}
	return cmd
}

// disableTimers stops every self-rescheduling command: spinner ticks,
// toast expiry and cursor blinking.
func (m *Model) disableTimers() {
	m.timers = false
	for _, input := range m.search {
		input.Cursor.SetMode(cursor.CursorStatic)
	}
	m.dirInput.Cursor.SetMode(cursor.CursorStatic)
}
