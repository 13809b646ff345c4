package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// otherOption is the select value that switches to free-text input.
const otherOption = -1

// ttHuhTheme styles huh forms with the formatter palette.
func ttHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// HuhPrompter asks through huh forms on the terminal.
type HuhPrompter struct {
	theme *huh.Theme
}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: ttHuhTheme()}
}

func (p *HuhPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errCancelled
	}
	return err
}

func (p *HuhPrompter) Pick(title string, items []string) (Selection, error) {
	if len(items) == 0 {
		name, err := p.Input(title)
		if err != nil {
			return Selection{}, err
		}
		return NameSelection(name), nil
	}

	options := make([]huh.Option[int], 0, len(items)+1)
	for i, item := range items {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, item), i))
	}
	options = append(options, huh.NewOption("Other (type a name)", otherOption))

	choice := 0
	if err := p.run(huh.NewSelect[int]().Title(title).Options(options...).Value(&choice)); err != nil {
		return Selection{}, err
	}
	if choice != otherOption {
		return IndexSelection(choice), nil
	}

	name, err := p.Input(title)
	if err != nil {
		return Selection{}, err
	}
	return NameSelection(name), nil
}

func (p *HuhPrompter) Input(title string) (string, error) {
	var value string
	if err := p.run(huh.NewInput().Title(title).Value(&value)); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&ok)
	if err := p.run(field); err != nil {
		return false, err
	}
	return ok, nil
}

var (
	_ Prompter = (*HuhPrompter)(nil)
	_ Prompter = (*LinePrompter)(nil)
)
