package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"matchwalk/internal/config"
	"matchwalk/internal/domain"
	"matchwalk/internal/eventbus"
	"matchwalk/internal/render"
	"matchwalk/internal/session"
	"matchwalk/internal/ui/input"
	inputtypes "matchwalk/internal/ui/input/types"
	"matchwalk/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	sess   *session.Session

	// Input fields, applied on the next start command
	text    string
	pattern string

	// UI-specific state
	width      int
	height     int
	statusMsg  string // transient message, usually a validation error
	statusErr  bool   // whether statusMsg is an error
	showHelp   bool
	showLegend bool

	// Handlers
	styles       *views.Styles
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	traceOps     *TraceOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	styles := views.NewStyles()

	return &Model{
		bus:          bus,
		config:       cfg,
		sess:         session.New(),
		text:         cfg.DefaultText,
		pattern:      cfg.DefaultPattern,
		showLegend:   cfg.UISettings.ShowLegend,
		styles:       styles,
		renderer:     views.NewRenderer(styles),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		traceOps:     NewTraceOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.traceOps != nil {
		m.traceOps.SetProgram(p)
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		actionCmd := m.applyActions(actions)
		return m, tea.Batch(cmd, actionCmd)

	case tracePagerMsg:
		if msg.err != nil {
			log.Printf("Trace pager error: %v", msg.err)
			m.setStatus("pager error: "+msg.err.Error(), true)
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	// Forward everything else (e.g. cursor blink) to the text input
	return m, m.inputHandler.Update(msg)
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		// Keep the current status line unless it is free
		if m.statusMsg == "" {
			m.setStatus("defaults saved", false)
		}
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
	}
	return m, nil
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Session:  m.sess,
		Text:     m.text,
		Pattern:  m.pattern,
		ShowHelp: m.showHelp,
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// applyActions executes the actions produced by the input handler.
// All session commands run to completion here, one at a time.
func (m *Model) applyActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.applyAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.StartSearchAction:
		if err := m.sess.Start(m.text, m.pattern); err != nil {
			m.setStatus(err.Error(), true)
			m.bus.Publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
			return nil
		}
		m.setStatus("", false)
		m.bus.Publish(eventbus.SearchStartedEvent{
			Text:      m.sess.Text(),
			Pattern:   m.sess.Pattern(),
			StepCount: m.sess.StepCount(),
		})

	case inputtypes.AdvanceAction:
		m.advance()

	case inputtypes.ResetAction:
		m.sess.Reset()
		m.text = m.config.DefaultText
		m.pattern = m.config.DefaultPattern
		m.setStatus("", false)
		m.bus.Publish(eventbus.SessionResetEvent{})

	case inputtypes.SubmitTextAction:
		m.applyEdit(a)

	case inputtypes.CancelTextAction:
		// Nothing to restore, the field was never overwritten

	case inputtypes.UpdateTextAction:
		// Live value is rendered straight from the text input

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ToggleLegendAction:
		m.showLegend = !m.showLegend

	case inputtypes.OpenTraceAction:
		return m.openTrace()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// advance moves the walker one step and publishes what happened
func (m *Model) advance() {
	if !m.sess.Started() || m.sess.Completed() {
		return
	}
	m.sess.Advance()
	m.setStatus("", false)

	if m.sess.Completed() {
		m.bus.Publish(eventbus.SearchCompletedEvent{Found: m.sess.Found()})
		return
	}
	step, ok := m.sess.Current()
	if !ok {
		return
	}
	m.bus.Publish(eventbus.StepAdvancedEvent{Index: m.sess.Cursor(), Step: step})
	if step.IsMatch() {
		m.bus.Publish(eventbus.MatchFoundEvent{Index: step.FoundAt[0]})
	}
}

// applyEdit commits a submitted field edit and asks for the new defaults
// to be persisted
func (m *Model) applyEdit(a inputtypes.SubmitTextAction) {
	switch a.Mode {
	case inputtypes.ModeEditText:
		m.text = a.Text
	case inputtypes.ModeEditPattern:
		m.pattern = a.Text
	default:
		return
	}
	m.config.DefaultText = m.text
	m.config.DefaultPattern = m.pattern
	m.bus.Publish(eventbus.ConfigChangedEvent{
		DefaultText:    m.text,
		DefaultPattern: m.pattern,
	})
}

func (m *Model) openTrace() tea.Cmd {
	content := render.TraceText(m.sess.Text(), m.sess.Pattern(), m.sess.Steps())
	return func() tea.Msg {
		return tracePagerMsg{err: m.traceOps.ShowTraceInPager(content)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.showHelp {
		return m.helpRenderer.renderHelpContent() + "\n\n" +
			m.styles.Help.Render("?: close help    q: quit")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("matchwalk - naive string search"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine("text", m.text, inputtypes.ModeEditText))
	b.WriteByte('\n')
	b.WriteString(m.fieldLine("pattern", m.pattern, inputtypes.ModeEditPattern))
	b.WriteString("\n\n")

	for _, line := range m.gridLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if m.showLegend {
		b.WriteString(m.renderer.Legend())
		b.WriteString("\n\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("s: start  n/space: next  r: reset  t: text  p: pattern  v: trace  l: legend  ?: help  q: quit"))
	return b.String()
}

// fieldLine renders one input row, replacing the value with the live text
// input while that field is being edited
func (m *Model) fieldLine(name, value string, mode inputtypes.Mode) string {
	label := m.styles.FieldName.Render(name + ":")
	pad := strings.Repeat(" ", 9-len(name)-1)
	if m.inputHandler.CurrentMode() == mode {
		if ti := m.inputHandler.TextInput(); ti != nil {
			return label + pad + m.styles.FieldEditing.Render("> ") + ti.View()
		}
	}
	return label + pad + m.styles.FieldValue.Render(value)
}

// gridLines renders the comparison grid for the current session state.
// Before a start the grid previews the pending inputs at shift zero.
func (m *Model) gridLines() []string {
	text, pattern := m.text, m.pattern
	var step *domain.Step
	var found []int

	if m.sess.Started() {
		text = m.sess.Text()
		pattern = m.sess.Pattern()
		found = m.sess.Found()
		if cur, ok := m.sess.Current(); ok {
			step = &cur
		}
	}
	if text == "" {
		return []string{m.styles.Dim.Render("(no text)")}
	}

	grid := render.BuildGrid(text, pattern, step, found)
	return m.renderer.GridLines(grid, len(text), m.config.UISettings.ShowIndexLabels)
}

// statusLine picks the message for the bottom status row
func (m *Model) statusLine() string {
	if m.statusMsg != "" {
		if m.statusErr {
			return m.styles.StatusError.Render("Error: " + m.statusMsg)
		}
		return m.styles.Status.Render(m.statusMsg)
	}
	if !m.sess.Started() {
		return m.styles.Status.Render("Enter text and pattern, then press 's' to start.")
	}
	if m.sess.Completed() {
		summary := render.Summary(m.sess.Found())
		if len(m.sess.Found()) > 0 {
			return m.styles.StatusSuccess.Render(summary) + m.styles.Status.Render("  Press 'r' to reset.")
		}
		return m.styles.StatusError.Render(summary) + m.styles.Status.Render("  Press 'r' to reset.")
	}
	var step *domain.Step
	if cur, ok := m.sess.Current(); ok {
		step = &cur
	}
	return m.styles.Status.Render(render.StatusLine(step))
}
