package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/framebuffer"
	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/menu"
	"github.com/atomicstack/pixelmenu/internal/state"
	"github.com/atomicstack/pixelmenu/internal/theme"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

// DefaultTick matches the frame period of a small embedded display loop.
const DefaultTick = 30 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Options configures the terminal host.
type Options struct {
	Tick     time.Duration
	Extra    input.Source
	Watch    string
	Width    int
	Height   int
	ShowHelp bool
}

// Model implements the Bubble Tea model that simulates a pixel display.
type Model struct {
	dispatcher *dispatcher.Dispatcher
	fb         *framebuffer.Framebuffer
	latch      *input.Latch
	source     input.Source
	bus        *command.Bus
	selections state.SelectionStore
	watch      state.WatchStore

	keys     keyMap
	help     help.Model
	showHelp bool

	tick     time.Duration
	autoTick bool
	screen   string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	infoMsg     string
	errMsg      string
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a menu tree to a framebuffer and the command bus.
func NewModel(root *menu.Menu, fb *framebuffer.Framebuffer, bus *command.Bus, opts Options) *Model {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if bus == nil {
		bus = command.New(nil)
	}
	latch := &input.Latch{}
	var source input.Source = latch
	if opts.Extra != nil {
		source = input.Merge{latch, opts.Extra}
	}
	selections := state.NewSelectionStore(8)
	var watch state.WatchStore
	if opts.Watch != "" {
		watch = state.NewWatchStore(opts.Watch)
	}
	m := &Model{
		dispatcher: dispatcher.New(root, fb, selections, watch),
		fb:         fb,
		latch:      latch,
		source:     source,
		bus:        bus,
		selections: selections,
		watch:      watch,
		keys:       defaultKeyMap(),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		tick:       opts.Tick,
		autoTick:   true,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.dispatcher.Root().Title()), m.step())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
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

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		events.App.Stop("quit")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
		return nil
	}
	for _, b := range m.keys.buttons() {
		if key.Matches(keyMsg, b.binding) {
			m.latch.Press(b.button)
			events.Host.Key(keyMsg.String(), b.button.String())
			return nil
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	return m.step()
}

// step runs one frame: the held snapshot drives Update and Draw, then the
// latch is cleared because terminals report presses but not releases.
func (m *Model) step() tea.Cmd {
	res := m.dispatcher.Handle(m.source.Snapshot())
	m.latch.Reset()

	cmds := make([]tea.Cmd, 0, 2)
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = res.Err.Error()
	} else {
		m.errMsg = ""
	}
	if res.Drew || m.screen == "" {
		m.screen = renderPixels(m.fb.Image())
	}
	if res.Selected {
		if cmd := m.bus.Dispatch(res.Entry); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if res.WatchChanged && m.watch != nil {
		m.infoMsg = fmt.Sprintf("%s = %d", m.watch.Label(), res.Watched)
	}
	if m.autoTick {
		cmds = append(cmds, tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) }))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		return nil
	}
	m.infoMsg = res.Info
	return nil
}
