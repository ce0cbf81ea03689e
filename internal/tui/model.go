package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/lined/foundation/core/error"
	mdwlog "github.com/msto63/lined/foundation/core/log"
	"github.com/msto63/lined/internal/command"
	"github.com/msto63/lined/internal/document"
)

// Rows taken by everything except the document viewport
const (
	outputHeight = 6
	chromeHeight = 2 + outputHeight + 1 + 3 + 1
)

// Options configure the TUI model
type Options struct {
	// Show rejected commands in the output pane
	Diagnostics bool

	Logger   *mdwlog.Logger
	Registry *command.Registry
}

// Model is the main TUI model
type Model struct {
	// State
	width  int
	height int
	ready  bool
	err    error

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Editor state
	interp      *command.Interpreter
	out         *bytes.Buffer
	diagnostics bool
	lastInput   string
	output      string
}

// NewModel creates a TUI model editing doc
func NewModel(doc *document.Document, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = `Befehl eingeben, z.B. insertEnd "text"`
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	out := &bytes.Buffer{}
	interp := command.NewInterpreter(doc, command.Options{
		Output:   out,
		Logger:   opts.Logger,
		Registry: opts.Registry,
	})

	return Model{
		textarea:    ta,
		interp:      interp,
		out:         out,
		diagnostics: opts.Diagnostics,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			if m.execute(input) == command.Quit {
				return m, tea.Quit
			}
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := max(3, msg.Height-chromeHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.textarea.SetWidth(max(10, msg.Width-4))
		m.updateContent()
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// execute runs one command line and captures its output
func (m *Model) execute(input string) command.Outcome {
	m.out.Reset()
	outcome, err := m.interp.Execute(input)

	m.lastInput = input
	m.output = m.out.String()
	m.err = nil
	if err != nil && m.diagnostics && mdwerror.IsRejection(err) {
		m.err = err
	}
	return outcome
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(RenderTitle("lined"))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderOutput())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

// renderDocument lists the document the way print does
func (m *Model) renderDocument() string {
	doc := m.interp.Document()
	if doc.IsEmpty() {
		return SystemMessageStyle.Render("(leeres Dokument)")
	}

	width := len(fmt.Sprint(doc.Size()))
	var s strings.Builder
	for n, text := range doc.All() {
		s.WriteString(LineNumberStyle.Render(fmt.Sprintf("%*d", width, n)))
		s.WriteString(" ")
		s.WriteString(LineTextStyle.Render(text))
		s.WriteString("\n")
	}
	return s.String()
}

func (m *Model) renderOutput() string {
	lines := make([]string, 0, outputHeight)

	if m.lastInput == "" {
		lines = append(lines, SubtitleStyle.Render(`Tippe "commands" für eine Liste aller Befehle.`))
	} else {
		lines = append(lines, CommandEchoStyle.Render("> "+m.lastInput))
	}

	if m.err != nil {
		msg := m.err.Error()
		var mdwErr *mdwerror.Error
		if errors.As(m.err, &mdwErr) {
			msg = mdwErr.Message()
		}
		lines = append(lines, RenderError(msg))
	}

	body := strings.Split(strings.TrimRight(m.output, "\n"), "\n")
	if m.output == "" {
		body = nil
	}
	room := outputHeight - len(lines)
	if len(body) > room {
		hidden := len(body) - room + 1
		body = append(body[:room-1], SystemMessageStyle.Render(fmt.Sprintf("(+%d weitere)", hidden)))
	}
	for _, line := range body {
		lines = append(lines, OutputStyle.Render(line))
	}

	for len(lines) < outputHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	help := "Enter: Ausführen • Esc/Ctrl+C: Beenden"
	doc := m.interp.Document()
	status := fmt.Sprintf("Zeilen: %d • Max: %d", doc.Size(), doc.MaxLineSize())

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(status)-2)),
			status,
		),
	)
}

func (m *Model) updateContent() {
	m.viewport.SetContent(m.renderDocument())
	m.viewport.GotoBottom()
}
