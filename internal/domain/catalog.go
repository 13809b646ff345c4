package domain

import (
	"fmt"
	"strings"
)

// Customer is a configured client with its known projects, in insertion order.
type Customer struct {
	Name     string
	Projects []string
}

// HasProject reports whether name is already one of the customer's projects.
func (c *Customer) HasProject(name string) bool {
	for _, p := range c.Projects {
		if p == name {
			return true
		}
	}
	return false
}

// Shortcut is a named (customer, project, note) triple for recurring work.
type Shortcut struct {
	Name     string
	Customer string
	Project  string
	Note     string
}

// NormalizeShortcutName lower-cases a shortcut name and strips a leading "@".
func NormalizeShortcutName(name string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "@"))
}

// Validate checks the fields every shortcut needs.
func (s *Shortcut) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("shortcut name is required")
	}
	if strings.TrimSpace(s.Customer) == "" || strings.TrimSpace(s.Project) == "" {
		return fmt.Errorf("shortcut %q needs a customer and a project", s.Name)
	}
	return nil
}

// MergeNote appends extra to the shortcut's note with ", ".
func (s *Shortcut) MergeNote(extra string) string {
	extra = strings.TrimSpace(extra)
	switch {
	case extra == "":
		return s.Note
	case s.Note == "":
		return extra
	default:
		return s.Note + ", " + extra
	}
}
