package resend

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/songminj/logtrack/render"
)

// Model runs the resend flow in the terminal. Every key press becomes a Msg
// for Reduce; the model itself only tracks the cursor and the text input.
type Model struct {
	state  State
	cursor int
	input  textarea.Model
	styles render.Styles
	now    func() time.Time
	done   bool
}

func NewModel(state State, styles render.Styles) Model {
	input := textarea.New()
	input.Placeholder = "alice@example.com, bob@example.com"
	input.ShowLineNumbers = false
	input.SetHeight(3)
	input.SetWidth(60)

	return Model{
		state:  state,
		input:  input,
		styles: styles,
		now:    time.Now,
	}
}

// State returns the reducer state, including the recorded requests.
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state.Dialog {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.done = true
		return m, tea.Quit
	}

	if m.state.Dialog {
		return m.updateDialog(key)
	}

	switch key.String() {
	case "q":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Candidates)-1 {
			m.cursor++
		}
	case "r":
		m.state = Reduce(m.state, ToggleMode{})
	case " ", "space":
		m.state = Reduce(m.state, ToggleSelect{Index: m.cursor})
	case "enter":
		m.state = Reduce(m.state, Submit{})
		if m.state.Dialog {
			m.input.SetValue(m.state.Emails)
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) updateDialog(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.state = Reduce(m.state, Cancel{})
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.state = Reduce(m.state, NewConfirm(m.now()))
		if !m.state.Dialog {
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.state = Reduce(m.state, SetEmails{Text: m.input.Value()})
	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Resend reports"))
	sb.WriteString("\n\n")

	for idx, name := range m.state.Candidates {
		pointer := "  "
		if idx == m.cursor {
			pointer = "> "
		}
		line := name
		if m.state.Mode {
			line = checkbox(m.state.IsSelected(idx)) + " " + name
		}
		if idx == m.cursor {
			line = s.Selected.Render(line)
		}
		sb.WriteString(pointer + line + "\n")
	}

	if m.state.Dialog {
		sb.WriteString("\n")
		body := s.Bold.Render("Resend these reports:") + "\n" +
			strings.Join(m.state.SelectedReports(), "\n") + "\n\n" +
			"Recipients, separated by commas:\n" + m.input.View()
		sb.WriteString(s.Card.Render(body))
		sb.WriteString("\n")
	}

	if !m.state.Notice.Empty() {
		sb.WriteString("\n")
		sb.WriteString(s.Notice(string(m.state.Notice.Level), m.state.Notice.Text))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(m.help()))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) help() string {
	switch {
	case m.state.Dialog:
		return "enter send • esc cancel"
	case m.state.Mode:
		return "↑/↓ move • space select • enter resend • r exit resend mode • q quit"
	default:
		return "↑/↓ move • r resend mode • q quit"
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// Summary describes the recorded requests after the program exits.
func Summary(requests []Request) []string {
	lines := make([]string, 0, len(requests))
	for _, request := range requests {
		lines = append(lines, fmt.Sprintf("%s: %s -> %s", request.ID, strings.Join(request.Reports, ", "), strings.Join(request.Emails, ", ")))
	}
	return lines
}
