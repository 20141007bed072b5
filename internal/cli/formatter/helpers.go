package formatter

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes d relative to today: "Today", "Yesterday", "3d ago",
// "2w ago" or "4mo ago". Future dates are labelled "Upcoming".
func RelativeDay(d, today civil.Date) string {
	days := today.DaysSince(d)
	switch {
	case days < 0:
		return "Upcoming"
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// Field renders one "LABEL  value" line of a detail card, substituting a
// dimmed "--" for an empty value.
func Field(label, value string, width int) string {
	if value == "" {
		value = Dim("--")
	}
	return fmt.Sprintf("%s  %s", StyleDim.Render(fmt.Sprintf("%-*s", width, label)), value)
}
