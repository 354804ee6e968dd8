package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"faqflip/internal/config"
	"faqflip/internal/eventbus"
	"faqflip/internal/flipcard"
	"faqflip/internal/markdown"
	"faqflip/internal/ui/input"
	inputtypes "faqflip/internal/ui/input/types"
	"faqflip/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctrl     *flipcard.Controller
	sched    *TickScheduler
	markdown *markdown.Renderer
	config   *config.Config
	cfgSvc   config.ConfigService
	log      *zap.Logger

	// UI-specific state
	width         int
	height        int
	theme         string
	themeChanged  bool
	cursor        int
	statusMessage string
	statusWarning bool
	showFullHelp  bool
	inPagerMode   bool

	help        help.Model
	progressBar progress.Model
	cardKeys    cardKeys
	boxKeys     lightboxKeys

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around a controller whose scheduler is
// sched. cfgSvc may be nil, in which case layout changes are not saved.
func NewModel(ctrl *flipcard.Controller, sched *TickScheduler, md *markdown.Renderer, cfg *config.Config, cfgSvc config.ConfigService, log *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if md == nil {
		md = markdown.New(cfg.Feed.BaseURL)
	}

	m := &Model{
		ctrl:         ctrl,
		sched:        sched,
		markdown:     md,
		config:       cfg,
		cfgSvc:       cfgSvc,
		log:          log.Named("ui"),
		theme:        cfg.UI.Theme,
		help:         help.New(),
		progressBar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		cardKeys:     newCardKeys(),
		boxKeys:      newLightboxKeys(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
	}
	m.cursor = ctrl.Snapshot().CurrentIndex
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Theme returns the active layout name
func (m *Model) Theme() string {
	return m.theme
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progressBar.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		ctx := cardContext{ctrl: m.ctrl, cursor: m.cursor}
		actions := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case taskMsg:
		m.ctrl.Run(msg.task)
		m.syncCursor()
		return m, m.sched.Drain()

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.RevealAction:
		m.ctrl.Reveal()

	case inputtypes.AdvanceAction:
		m.ctrl.Advance()

	case inputtypes.RetreatAction:
		m.ctrl.Retreat()

	case inputtypes.RewindAction:
		m.ctrl.Rewind()

	case inputtypes.JumpAction:
		// only unlocked entries are reachable from the list
		if m.ctrl.Visibility(a.Index) != flipcard.Hidden {
			m.ctrl.JumpTo(a.Index)
		}

	case inputtypes.MoveCursorAction:
		m.moveCursor(a.Delta)

	case inputtypes.OpenImageAction:
		m.ctrl.OpenImage(a.Index)

	case inputtypes.CloseImageAction:
		m.ctrl.CloseImage()

	case inputtypes.CycleImageAction:
		m.ctrl.CycleImage(a.Direction)

	case inputtypes.CancelAction:
		if !m.ctrl.Cancel() && m.showFullHelp {
			m.showFullHelp = false
		}
		m.cursor = m.ctrl.Snapshot().CurrentIndex

	case inputtypes.CycleThemeAction:
		m.cycleTheme()
		return m.setStatus(fmt.Sprintf("Layout: %s", m.theme), false)

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.showFullHelp = !m.showFullHelp
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.saveTheme()
		m.ctrl.Close()
		return tea.Quit
	}

	return m.sched.Drain()
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline key list
			m.log.Warn("help pager failed", zap.Error(msg.err))
			m.showFullHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusWarning = false
		return m, nil
	}
	return m, nil
}

// handleEvent turns domain events into status line updates
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ProgressRestoredEvent:
		if e.CurrentIndex > 0 {
			return m.setStatus(fmt.Sprintf("Resumed at question %d", e.CurrentIndex+1), false)
		}
	case eventbus.ProgressSaveFailedEvent:
		return m.setStatus("Progress can't be saved this session", true)
	case eventbus.ConfigSavedEvent:
		m.log.Info("config saved", zap.String("path", e.Path))
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	case eventbus.FeedChangedEvent:
		return m.setStatus("FAQ updated upstream, restart to load it", false)
	}
	return nil
}

func (m *Model) setStatus(text string, warning bool) tea.Cmd {
	m.statusMessage = text
	m.statusWarning = warning
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// syncCursor puts the list cursor back on the current entry after the
// controller moved
func (m *Model) syncCursor() {
	m.cursor = m.ctrl.Snapshot().CurrentIndex
}

// moveCursor steps over entries that are not hidden. Unlocked entries form
// a prefix of the list, so the cursor is clamped to that prefix.
func (m *Model) moveCursor(delta int) {
	last := 0
	for i := 0; i < m.ctrl.Len(); i++ {
		if m.ctrl.Visibility(i) != flipcard.Hidden {
			last = i
		}
	}
	m.cursor = min(max(m.cursor+delta, 0), last)
}

func (m *Model) cycleTheme() {
	names := views.LayoutNames
	next := names[0]
	for i, name := range names {
		if name == m.theme {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.theme = next
	m.themeChanged = true
}

// saveTheme writes a changed layout back to the config file
func (m *Model) saveTheme() {
	if !m.themeChanged || m.cfgSvc == nil {
		return
	}
	m.config.UI.Theme = m.theme
	if err := m.cfgSvc.Save(m.config); err != nil {
		m.log.Warn("failed to save config", zap.Error(err))
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.theme, m.frame())
}

// frame snapshots the controller for the views
func (m *Model) frame() views.Frame {
	st := m.ctrl.Snapshot()
	current := m.ctrl.Current()

	f := views.Frame{
		Width:         m.width,
		Height:        m.height,
		Index:         st.CurrentIndex,
		Total:         m.ctrl.Len(),
		Mode:          st.Mode(),
		Question:      current.Question,
		Next:          m.ctrl.Next().Question,
		Images:        current.ImageURLs,
		FocusedImage:  st.FocusedImage,
		Sidebar:       m.ctrl.Sidebar(),
		Cursor:        m.cursor,
		ProgressBar:   m.progressBar.ViewAs(m.ctrl.ProgressFraction()),
		StatusMessage: m.statusMessage,
		StatusWarning: m.statusWarning,
	}
	if st.Mode() == flipcard.ModeAnswer {
		f.Answer = m.markdown.Render(current.Answer)
	}

	m.help.ShowAll = m.showFullHelp
	if st.ImageOpen() {
		f.Footer = m.help.View(m.boxKeys)
	} else {
		f.Footer = m.help.View(m.cardKeys)
	}
	return f
}
