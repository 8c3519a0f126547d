package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CredentialLines is how many lines make up one pasted profile.
const CredentialLines = 4

// ErrPasteCancelled is returned when the user leaves the paste prompt.
var ErrPasteCancelled = errors.New("paste cancelled")

var pasteLabels = [CredentialLines]string{"profile", "access key", "secret key", "session token"}

// PasteModel collects pasted credential lines exactly as received. A \r\n
// pair ends a single line.
type PasteModel struct {
	want      int
	lines     []string
	current   []rune
	afterCR   bool
	quitting  bool
	cancelled bool
}

// NewPasteModel creates a model that finishes after want lines.
func NewPasteModel(want int) PasteModel {
	return PasteModel{want: want}
}

// Lines returns the lines collected so far.
func (m PasteModel) Lines() []string {
	return m.lines
}

// Done reports whether every line has been received.
func (m PasteModel) Done() bool {
	return len(m.lines) >= m.want
}

// Cancelled reports whether the user aborted.
func (m PasteModel) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model
func (m PasteModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	afterCR := m.afterCR
	m.afterCR = false

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.commit()

	case tea.KeyBackspace:
		if len(m.current) > 0 {
			m.current = m.current[:len(m.current)-1]
		}

	case tea.KeySpace:
		m.current = append(m.current, ' ')

	case tea.KeyTab:
		m.current = append(m.current, '\t')

	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			if m.Done() {
				break
			}
			switch {
			case r == '\n' && afterCR:
				afterCR = false
			case r == '\n' || r == '\r':
				m.commit()
				afterCR = r == '\r'
			default:
				m.current = append(m.current, r)
				afterCR = false
			}
		}
		m.afterCR = afterCR
	}

	if m.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *PasteModel) commit() {
	m.lines = append(m.lines, string(m.current))
	m.current = m.current[:0]
}

// View implements tea.Model
func (m PasteModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(PastePrompt))
	sb.WriteString("\n\n")

	for i := 0; i < m.want; i++ {
		label := fmt.Sprintf("line %d", i+1)
		if i < len(pasteLabels) {
			label = pasteLabels[i]
		}
		label = padRight(label, 14)

		switch {
		case i < len(m.lines):
			sb.WriteString(OKStyle.Render("  ✓ " + label))
			sb.WriteString(MutedStyle.Render(fmt.Sprintf("%d chars", len(m.lines[i]))))
		case i == len(m.lines):
			sb.WriteString(NameStyle.Render("  > " + label))
			sb.WriteString(MutedStyle.Render(fmt.Sprintf("%d chars", len(m.current))))
		default:
			sb.WriteString(MutedStyle.Render("    " + label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HintStyle.Render("[Enter:next line] [Esc:cancel]"))
	sb.WriteString("\n")
	return sb.String()
}

// ReadPastedLines reads CredentialLines lines. Terminals get the interactive
// paste prompt; anything else is read line by line after printing the prompt.
func ReadPastedLines(in io.Reader, out io.Writer, interactive bool) ([]string, error) {
	if !interactive {
		fmt.Fprintln(out, PastePrompt)
		return ReadLines(in, CredentialLines)
	}

	p := tea.NewProgram(NewPasteModel(CredentialLines), tea.WithInput(in), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running paste prompt: %w", err)
	}

	result := finalModel.(PasteModel)
	if result.Cancelled() {
		return nil, ErrPasteCancelled
	}
	if !result.Done() {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, len(result.Lines()), CredentialLines)
	}

	return result.Lines(), nil
}
