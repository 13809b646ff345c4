package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/billing"
)

// ClipboardText renders the summary as plain lines suitable for pasting into
// a timesheet, one line per group. Undescribed time is left out of the
// bracketed task list but still counts toward the group total.
func ClipboardText(sum Summary) string {
	var b strings.Builder
	for _, g := range sum.Groups {
		var details []string
		for _, task := range g.Tasks {
			if task.Label == NoDescription {
				continue
			}
			details = append(details, fmt.Sprintf("%s (%dm)", task.Label, billing.Minutes(task.Seconds)))
		}

		fmt.Fprintf(&b, "%s - %s: %d min", g.Customer, g.Project, billing.Minutes(g.TotalSeconds))
		if len(details) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(details, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
