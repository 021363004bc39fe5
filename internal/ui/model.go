package ui

import (
	"math/rand"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/backend"
	"github.com/atomicstack/learnaz/internal/counter"
	"github.com/atomicstack/learnaz/internal/data/dispatcher"
	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/nav"
	"github.com/atomicstack/learnaz/internal/newsletter"
	"github.com/atomicstack/learnaz/internal/prompt"
	"github.com/atomicstack/learnaz/internal/state"
	"github.com/atomicstack/learnaz/internal/store"
	"github.com/atomicstack/learnaz/internal/theme"
	"github.com/atomicstack/learnaz/internal/ui/command"
	uistate "github.com/atomicstack/learnaz/internal/ui/state"
)

const siteName = "LearnAZ"

type focus int

const (
	focusList focus = iota
	focusSearch
	focusTag
	focusPrompt
	focusNewsletter
)

type msgHandler func(tea.Msg) tea.Cmd

// scheduler delivers the message built by fn after d has elapsed.
type scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Options configures a Model. Zero values select the defaults.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Catalog    state.CatalogStore
	Watcher    *backend.Watcher
	Store      store.Store
	AssetsDir  string
	Filter     feed.FilterState
	Clock      func() time.Time
	Rand       func() float64
	Clipboard  prompt.Copier
}

// Model implements the Bubble Tea model for the site.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	errMsg      string

	catalog    state.CatalogStore
	adapter    *feed.Adapter
	list       *uistate.List
	modal      *feed.Modal
	image      imageStatus
	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	assetsDir  string

	theme    *theme.Controller
	styles   *theme.Styles
	nav      *nav.Nav
	counters *counter.Set

	focus             focus
	search            uistate.Input
	filterCursor      cursor.Model
	filterCursorDirty bool
	tagInput          textinput.Model

	promptForm   *promptForm
	promptOutput string
	email        textinput.Model
	subscribe    newsletter.Form

	kv       store.Store
	copier   prompt.Copier
	toast    string
	toastSeq uint64

	now      func() time.Time
	rnd      func() float64
	schedule scheduler

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI from opts.
func NewModel(opts Options) *Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = state.NewCatalogStore(nil)
	}
	kv := opts.Store
	if kv == nil {
		kv = store.NewMemory()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.Float64
	}
	copier := opts.Clipboard
	if copier == nil {
		copier = prompt.SystemClipboard
	}
	m := &Model{
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		catalog:    catalog,
		adapter:    feed.NewAdapter(feed.SourceFunc(catalog.Records), opts.Filter),
		list:       uistate.NewList(cardRows),
		modal:      feed.NewModal(),
		backend:    opts.Watcher,
		dispatcher: dispatcher.New(catalog),
		bus:        command.New(),
		assetsDir:  opts.AssetsDir,
		theme:      theme.NewController(kv, theme.Dark),
		nav:        nav.New(),
		counters:   counter.NewSet(counter.Defaults(), rnd),
		promptForm: newPromptForm(),
		kv:         kv,
		copier:     copier,
		now:        now,
		rnd:        rnd,
		schedule:   tea.Tick,
	}
	m.styles = m.theme.Styles()
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.search.Set(opts.Filter.Query, len([]rune(opts.Filter.Query)))
	m.tagInput = newTagInput()
	m.email = newEmailInput()
	c := cursor.New()
	c.SetChar(" ")
	m.filterCursor = c
	m.applyStyles()
	m.refreshFeed()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if m.width > 0 && m.height > 0 {
		if cmd := m.startCounters(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.focus == focusSearch {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.forwardToFocused(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(imageResultMsg{}):    m.handleImageResultMsg,
		reflect.TypeOf(counterFrameMsg{}):   m.handleCounterFrameMsg,
		reflect.TypeOf(toastExpiredMsg{}):   m.handleToastExpiredMsg,
		reflect.TypeOf(subscribeDoneMsg{}):  m.handleSubscribeDoneMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
		reflect.TypeOf(saveResultMsg{}):     m.handleSaveResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

// forwardToFocused hands unrouted messages such as cursor blinks to the
// focused bubbles component.
func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTag:
		m.tagInput, cmd = m.tagInput.Update(msg)
	case focusPrompt:
		cmd = m.promptForm.Update(msg)
	case focusNewsletter:
		m.email, cmd = m.email.Update(msg)
	}
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyStyles pushes the active theme into the bubbles components.
func (m *Model) applyStyles() {
	m.styles = m.theme.Styles()
	if m.styles.Cursor != nil {
		m.filterCursor.Style = *m.styles.Cursor
	}
	if m.styles.Filter != nil {
		m.filterCursor.TextStyle = *m.styles.Filter
	}
	styleInput(&m.tagInput, m.styles)
	styleInput(&m.email, m.styles)
	m.promptForm.applyStyles(m.styles)
}

// FilterState exposes the committed filter values.
func (m *Model) FilterState() feed.FilterState {
	return m.adapter.State()
}

// ModalState exposes the detail view lifecycle state.
func (m *Model) ModalState() feed.ModalState {
	return m.modal.State()
}
