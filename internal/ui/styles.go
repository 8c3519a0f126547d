package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder  = "240"
	ColorHeader  = "252"
	ColorAccount = "214"
	ColorName    = "81"
	ColorKey     = "252"
	ColorOK      = "82"
	ColorBad     = "203"
	ColorMuted   = "240"
	ColorHint    = "245"
)

// Shared styles
var (
	BorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	AccountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccount))
	NameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	KeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKey))
	OKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOK))
	BadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBad))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// MaskKey shows the first and last four characters of an access key id.
func MaskKey(key string) string {
	if key == "" {
		return "-"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
