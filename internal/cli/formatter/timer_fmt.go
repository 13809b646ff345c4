package formatter

import (
	"fmt"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/domain"
)

func FormatStarted(s *domain.Session, note string) string {
	msg := "Started: " + Pair(s.Customer, s.Project)
	if note != "" {
		msg += fmt.Sprintf(" ('%s')", note)
	}
	return StyleGreen.Render("▶") + " " + msg
}

func FormatStopped(e *domain.HistoryEntry) string {
	return StyleRed.Render("■") + " " + fmt.Sprintf("Stopped: %s (Billed: %s)",
		Pair(e.Customer, e.Project), billing.FormatBilled(e.DurationSeconds))
}

func FormatNoteAdded(text string) string {
	return Success(fmt.Sprintf("Note added: %q", text))
}
