package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	pkgtypes "github.com/vietdv277/credpaste/pkg/types"
)

const (
	profileListHeight = 10
	minWidth          = 60
	maxWidth          = 120
)

// ProfileModel represents the bubbletea model for profile selection
type ProfileModel struct {
	profiles      []pkgtypes.ProfileSummary
	filtered      []pkgtypes.ProfileSummary
	cursor        int
	offset        int
	search        string
	selected      *pkgtypes.ProfileSummary
	quitting      bool
	cancelled     bool
	termWidth     int
	contentWidth  int
	activeProfile string
}

// NewProfileModel creates a new profile selector model
func NewProfileModel(profiles []pkgtypes.ProfileSummary, activeProfile string) ProfileModel {
	m := ProfileModel{
		profiles:      profiles,
		filtered:      profiles,
		cursor:        0,
		offset:        0,
		search:        "",
		termWidth:     80,
		activeProfile: activeProfile,
	}
	m.calculateWidths()
	return m
}

func (m *ProfileModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}
}

// Init implements tea.Model
func (m ProfileModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+profileListHeight {
					m.offset = m.cursor - profileListHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterProfiles()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterProfiles()
		}
	}

	return m, nil
}

func (m *ProfileModel) filterProfiles() {
	if m.search == "" {
		m.filtered = m.profiles
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, p := range m.profiles {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(p.AccountID, query) {
				m.filtered = append(m.filtered, p)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model
func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Title
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padRight(" Select Credentials Profile", w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Search input
	searchLine := " > " + m.search
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(padRight(searchLine, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Empty line
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Profile list
	visibleEnd := m.offset + profileListHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}

	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderProfileRow(i))
	}

	// Fill remaining lines
	for i := len(m.filtered); i < m.offset+profileListHeight; i++ {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m ProfileModel) renderProfileRow(idx int) string {
	var sb strings.Builder
	profile := m.filtered[idx]
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(Vertical))

	var line strings.Builder
	plainWidth := 0

	// Active indicator
	if profile.Name == m.activeProfile {
		line.WriteString(" ● ")
	} else if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	// Name
	nameWidth := 30
	nameText := padRight(profile.Name, nameWidth)
	if profile.Name == m.activeProfile {
		line.WriteString(OKStyle.Render(nameText))
	} else {
		line.WriteString(NameStyle.Render(nameText))
	}
	line.WriteString("  ")
	plainWidth += nameWidth + 2

	// Account
	accountWidth := 14
	line.WriteString(AccountStyle.Render(padRight(formatOptional(profile.AccountID), accountWidth)))
	line.WriteString("  ")
	plainWidth += accountWidth + 2

	// Status
	statusWidth := 10
	statusText := padRight(formatStatus(profile.Complete), statusWidth)
	if profile.Complete {
		line.WriteString(OKStyle.Render(statusText))
	} else {
		line.WriteString(BadStyle.Render(statusText))
	}
	plainWidth += statusWidth

	// Pad to fill
	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (m ProfileModel) renderStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d profiles", len(m.filtered), len(m.profiles))
	hintsPlain := "[Enter:select] [Esc:cancel]"

	countWidth := runewidth.StringWidth(countInfo)
	hintsWidth := runewidth.StringWidth(hintsPlain)
	padding := w - countWidth - hintsWidth

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// SelectProfile displays an interactive selector for credentials file profiles
func SelectProfile(profiles []pkgtypes.ProfileSummary, activeProfile string) (*pkgtypes.ProfileSummary, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles available")
	}

	m := NewProfileModel(profiles, activeProfile)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ProfileModel)
	if result.cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}

	return result.selected, nil
}
