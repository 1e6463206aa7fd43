package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/dom"
)

// Model drives one dialog in a Bubble Tea program. The dialog must already
// be shown on the controller; the program quits once it has been torn down.
type Model struct {
	ctrl     *dialog.Controller
	doc      *dom.Document
	sched    *Scheduler
	renderer *Renderer
	keys     keyMap
	input    textinput.Model

	targets []*dom.Node
	focus   int

	width    int
	height   int
	quitting bool
}

// New creates a Model for the controller's active dialog. sched must be the
// scheduler the controller was created with.
func New(ctrl *dialog.Controller, doc *dom.Document, sched *Scheduler, renderer *Renderer) Model {
	ti := textinput.New()
	ti.Prompt = ""

	m := Model{
		ctrl:     ctrl,
		doc:      doc,
		sched:    sched,
		renderer: renderer,
		keys:     defaultKeyMap(),
		input:    ti,
	}

	if inst := ctrl.Active(); inst != nil {
		for _, n := range []*dom.Node{inst.Nodes.Input, inst.Nodes.OKButton, inst.Nodes.CancelButton} {
			if n != nil {
				m.targets = append(m.targets, n)
			}
		}
		if inst.Nodes.Input != nil {
			m.input.SetValue(inst.Nodes.Input.Value())
		}
	}

	m.keys.Toggle.SetEnabled(m.buttonCount() > 1)
	m.keys.Next.SetEnabled(len(m.targets) > 1)
	m.keys.Prev.SetEnabled(len(m.targets) > 1)
	if m.cancelButton() == nil {
		m.keys.Cancel.SetHelp("esc", "close")
	}
	m.applyFocus()

	return m
}

// Init starts the queued dialog timers.
func (m Model) Init() tea.Cmd {
	if m.ctrl.State() == dialog.StateIdle {
		return tea.Quit
	}
	cmds := []tea.Cmd{m.sched.Flush()}
	if m.inputFocused() {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles timer continuations and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerMsg:
		msg.fn()
		if m.ctrl.State() == dialog.StateIdle {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.sched.Flush()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.inputFocused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == dialog.StateIdle {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl.State() == dialog.StateAnimatingOut {
			m.quitting = true
			return m, tea.Quit
		}
		m.dismiss()
	case key.Matches(msg, m.keys.Cancel):
		m.dismiss()
	case key.Matches(msg, m.keys.Confirm):
		m.activate()
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case !m.inputFocused() && key.Matches(msg, m.keys.Toggle):
		m.moveFocus(1)
	case m.inputFocused():
		m.input, cmd = m.input.Update(msg)
		if inst := m.ctrl.Active(); inst != nil && inst.Nodes.Input != nil {
			inst.Nodes.Input.SetValue(m.input.Value())
		}
	}

	return m, tea.Batch(cmd, m.sched.Flush())
}

// dismiss cancels through the cancel button when there is one. Dialogs
// without it are hidden without an outcome.
func (m *Model) dismiss() {
	if m.cancelButton() != nil {
		m.ctrl.Click(false)
		return
	}
	m.ctrl.Hide()
}

// activate clicks the focused button. Enter in the prompt input submits.
func (m *Model) activate() {
	inst := m.ctrl.Active()
	if inst == nil {
		return
	}

	focused := m.focused()
	switch {
	case focused != nil && focused == inst.Nodes.CancelButton:
		m.ctrl.Click(false)
	case inst.Nodes.OKButton != nil:
		m.ctrl.Click(true)
	default:
		m.ctrl.Hide()
	}
}

func (m *Model) moveFocus(delta int) {
	if len(m.targets) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.targets)) % len(m.targets)
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if m.inputFocused() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) focused() *dom.Node {
	if len(m.targets) == 0 {
		return nil
	}
	return m.targets[m.focus]
}

func (m Model) inputFocused() bool {
	n := m.focused()
	return n != nil && n.Tag() == "input"
}

func (m Model) cancelButton() *dom.Node {
	if inst := m.ctrl.Active(); inst != nil {
		return inst.Nodes.CancelButton
	}
	return nil
}

func (m Model) buttonCount() int {
	count := 0
	for _, n := range m.targets {
		if n.Tag() == "button" {
			count++
		}
	}
	return count
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the dialog.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := Frame{
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused(),
		Help:    helpLine(m.keys.Next, m.keys.Toggle, m.keys.Confirm, m.keys.Cancel),
	}
	if m.inputFocused() {
		f.Input = m.input.View()
	}

	return m.renderer.Render(m.doc, f)
}
