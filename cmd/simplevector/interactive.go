package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/simplevector"
	"github.com/wippyai/simplevector/vector"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	presentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#98FB98")).
			Width(slotWidth).
			Align(lipgloss.Right)

	reservedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Background(lipgloss.Color("#2A2A2A")).
			Width(slotWidth).
			Align(lipgloss.Center)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	slotWidth    = 6
	historyLimit = 8
	defaultWidth = 80
)

type historyEntry struct {
	input  string
	result string
	err    error
}

type interactiveModel struct {
	vec     *vector.Vector[int]
	input   textinput.Model
	history []historyEntry
	width   int
}

func newInteractiveModel(v *vector.Vector[int], width int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "push 1"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	if width <= 0 {
		width = defaultWidth
	}
	return &interactiveModel{
		vec:   v,
		input: ti,
		width: width,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if m.exec(line) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// exec runs one playground line and reports whether the session should end.
func (m *interactiveModel) exec(line string) bool {
	entry := historyEntry{input: line}
	cmd, err := parseCommand(line)
	if err == nil {
		entry.result, err = cmd.apply(m.vec)
	}
	entry.err = err

	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	return err == nil && cmd.op == opQuit
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Vector Playground"))
	b.WriteString("\n\n")
	b.WriteString(renderSlots(m.vec, m.width))
	b.WriteString("\n\n")
	b.WriteString(statsStyle.Render(m.vec.Stats().String()))
	b.WriteString("\n\n")

	for _, h := range m.history {
		b.WriteString(helpStyle.Render("> " + h.input))
		b.WriteString("  ")
		if h.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", h.err)))
		} else {
			b.WriteString(resultStyle.Render(h.result))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(commandHelp))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter run • esc quit"))

	return b.String()
}

// renderSlots draws one cell per allocated slot: present elements with their
// value, reserved slots as a dot. Rows wrap at width.
func renderSlots(seq simplevector.Sequence[int], width int) string {
	capacity := seq.Cap()
	if capacity == 0 {
		return helpStyle.Render("(no storage)")
	}

	perRow := max(1, width/(slotWidth+1))
	var rows []string
	var row []string
	for i := range capacity {
		if i < seq.Len() {
			row = append(row, presentStyle.Render(strconv.Itoa(seq.Get(i))+" "))
		} else {
			row = append(row, reservedStyle.Render("·"))
		}
		if len(row) == perRow {
			rows = append(rows, strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

func runInteractive(v *vector.Vector[int], width int) error {
	model := newInteractiveModel(v, width)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
