package ui

import (
	"fmt"
	"io"
	"strings"

	pkgtypes "github.com/vietdv277/credpaste/pkg/types"
)

// PrintProfileTable prints credentials file sections in a styled box table
func PrintProfileTable(w io.Writer, profiles []pkgtypes.ProfileSummary, activeProfile string) {
	headers := []string{"", "Name", "Account", "Access Key", "Line", "Status"}

	nameWidth := len(headers[1])
	for _, p := range profiles {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}
	if nameWidth > 48 {
		nameWidth = 48
	}

	colWidths := []int{3, nameWidth, 12, 20, 5, 10}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, colWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	for _, p := range profiles {
		sb.WriteString(BorderStyle.Render(Vertical))

		// Active indicator
		activeCell := "   "
		if p.Name == activeProfile {
			activeCell = " ● "
		}
		sb.WriteString(OKStyle.Render(padRight(activeCell, colWidths[0]+2)))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Name
		cell := " " + padRight(p.Name, colWidths[1]) + " "
		if p.Name == activeProfile {
			sb.WriteString(OKStyle.Render(cell))
		} else {
			sb.WriteString(NameStyle.Render(cell))
		}
		sb.WriteString(BorderStyle.Render(Vertical))

		// Account
		cell = " " + padRight(formatOptional(p.AccountID), colWidths[2]) + " "
		sb.WriteString(AccountStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Access key, masked
		cell = " " + padRight(MaskKey(p.AccessKeyID), colWidths[3]) + " "
		sb.WriteString(KeyStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Line
		cell = " " + padRight(fmt.Sprintf("%d", p.Line), colWidths[4]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Status
		cell = " " + padRight(formatStatus(p.Complete), colWidths[5]) + " "
		if p.Complete {
			sb.WriteString(OKStyle.Render(cell))
		} else {
			sb.WriteString(BadStyle.Render(cell))
		}
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Fprint(w, sb.String())
	fmt.Fprintf(w, "  %d profiles\n", len(profiles))
}

func formatStatus(complete bool) string {
	if complete {
		return "● valid"
	}
	return "○ partial"
}

func formatOptional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
