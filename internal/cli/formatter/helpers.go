package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMinutes renders seconds as whole minutes, e.g. "45 min".
func FormatMinutes(seconds int64) string {
	return fmt.Sprintf("%d min", billing.Minutes(seconds))
}

// FormatElapsed renders a running duration as H:MM:SS.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// Ago describes how long before now t was, e.g. "25 minutes ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Pair renders "customer - project".
func Pair(customer, project string) string {
	return customer + " - " + project
}
