package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for the values a command is missing.
type Prompter interface {
	// Pick shows items as a numbered list and returns the choice, which may
	// be free text not in items.
	Pick(title string, items []string) (Selection, error)
	Input(title string) (string, error)
	Confirm(title string) (bool, error)
}

// LinePrompter prompts on plain streams: numbered lists and typed answers.
// It is used when stdin is not a terminal and in tests.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{In: in, Out: out}
}

func (p *LinePrompter) Pick(title string, items []string) (Selection, error) {
	if len(items) == 0 {
		fmt.Fprintln(p.Out, "   (List is empty)")
	}
	for i, item := range items {
		fmt.Fprintf(p.Out, " [%d] %s\n", i+1, item)
	}
	fmt.Fprintf(p.Out, "%s (or type name): ", title)

	text, err := readPromptLine(p.In)
	if err != nil && !errors.Is(err, io.EOF) {
		return Selection{}, err
	}
	return ParseSelection(text)
}

func (p *LinePrompter) Input(title string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", title)
	text, err := readPromptLine(p.In)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *LinePrompter) Confirm(title string) (bool, error) {
	return promptYesNoIO(p.In, p.Out, title+" (y/N): "), nil
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	return promptYesNoWithDefaultIO(in, out, message, false)
}

func promptYesNoWithDefaultIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil && (!errors.Is(err, io.EOF) || text == "") {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// readPromptLine reads one byte at a time up to LF or CR, so a shared reader
// can serve several prompts and Enter works in raw terminal mode.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
