package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/domain"
)

// FormatShortcutList renders the shortcut overview with usage hints.
func FormatShortcutList(list []domain.Shortcut) string {
	var b strings.Builder
	if len(list) == 0 {
		b.WriteString("No shortcuts defined.\n")
		b.WriteString(Dim("Create one with: tt shortcut add <name> <customer> <project> [note]"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Header("Shortcuts"))
	b.WriteString("\n")
	for _, sc := range list {
		line := fmt.Sprintf("  %-13s → %s / %s", "@"+sc.Name, sc.Customer, sc.Project)
		if sc.Note != "" {
			line += Dim(" - " + sc.Note)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: %d shortcut(s)\n", len(list))
	b.WriteString(Dim("Usage: tt start @<name> or tt start -s <name>"))
	b.WriteString("\n")
	return b.String()
}

// FormatShortcutPick renders one tab-separated line per shortcut for fzf.
func FormatShortcutPick(list []domain.Shortcut) string {
	var b strings.Builder
	for _, sc := range list {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", sc.Name, sc.Customer, sc.Project, sc.Note)
	}
	return b.String()
}

// FormatShortcutCompletions renders "@name" lines for shell completion.
func FormatShortcutCompletions(list []domain.Shortcut) string {
	var b strings.Builder
	for _, sc := range list {
		b.WriteString("@" + sc.Name + "\n")
	}
	return b.String()
}
