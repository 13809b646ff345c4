package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
)

// FormatReport renders the daily report table. cur is the running session,
// if any; quantumMinutes only labels the header.
func FormatReport(sum report.Summary, cur *domain.Session, now time.Time, quantumMinutes int64) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Daily report (%d min blocks)", quantumMinutes)))
	b.WriteString("\n")

	if len(sum.Groups) == 0 {
		b.WriteString(Dim("No time tracked today."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(sum.Groups)*2)
	for _, g := range sum.Groups {
		rows = append(rows, []string{g.Customer, g.Project, billing.FormatClock(g.TotalSeconds), FormatMinutes(g.TotalSeconds)})
		for _, t := range g.Tasks {
			label := t.Label
			if label == report.NoDescription {
				label = Dim(label)
			}
			rows = append(rows, []string{"", "", "", fmt.Sprintf("- %s (%s)", label, FormatMinutes(t.Seconds))})
		}
	}
	b.WriteString(RenderTable([]string{"CUSTOMER", "PROJECT", "TOTAL", "DETAILS"}, rows))
	b.WriteString(StyleDim.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(Bold(fmt.Sprintf("TOTAL: %s (%s)", billing.FormatClock(sum.TotalSeconds), FormatMinutes(sum.TotalSeconds))))
	b.WriteString("\n")

	if sum.IncludesRunning && cur != nil {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("(Includes currently running timer: %s, started %s)",
			Pair(cur.Customer, cur.Project), Ago(cur.StartedAt, now))))
		b.WriteString("\n")
	}
	return b.String()
}
