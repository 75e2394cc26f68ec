package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tarbetu/portfolio/internal/content"
	"github.com/tarbetu/portfolio/internal/theme"
	uistate "github.com/tarbetu/portfolio/internal/ui/state"
)

var styles = theme.Default()

const defaultTickInterval = 100 * time.Millisecond

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg is the animation clock. The timestamp drives the phase machine so
// the intro cadence is independent of the tick frequency.
type tickMsg time.Time

// Options configures a fresh model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	TickInterval time.Duration
	Now          func() time.Time
}

// Model implements the Bubble Tea model for the portfolio. A single value
// owns all mutable state; the runtime serializes Update calls, so no further
// synchronization exists or is needed.
type Model struct {
	machine     *uistate.Machine
	selection   uistate.Selection
	sections    []content.Section
	titles      []string
	titleIndex  int
	mosaicStep  int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	tick        time.Duration
	now         func() time.Time
	keys        keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state at the top of the intro sequence.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = defaultTickInterval
	}
	m := &Model{
		machine:    uistate.NewMachine(now()),
		sections:   content.Sections(),
		titles:     content.Titles(),
		showFooter: opts.ShowFooter,
		tick:       tick,
		now:        now,
		keys:       defaultKeyMap(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.selection.Clamp(len(m.sections))
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
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

// selected returns the section under the cursor.
func (m *Model) selected() content.Section {
	idx := m.selection.Index
	if idx < 0 || idx >= len(m.sections) {
		idx = 0
	}
	return m.sections[idx]
}

// title returns the current header title, honoring the cycle key.
func (m *Model) title() string {
	if len(m.titles) == 0 {
		return ""
	}
	return m.titles[m.titleIndex%len(m.titles)]
}
