package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/betteros/goal-crew/internal/i18n"
)

const (
	editorMinWidth       = 24
	editorMaxWidth       = 96
	editorDefaultWidth   = 72
	entriesMinHeight     = 3
	entriesMaxHeight     = 10
	entriesDefaultHeight = 6
)

// answerModel edits one interview answer. A plain answer is a single line
// submitted with Enter. A list answer takes one entry per line and is
// submitted with Ctrl+D.
type answerModel struct {
	editor    textarea.Model
	question  string
	list      bool
	submitted bool
	cancelled bool
}

// interactive returns the terminal files behind r and w when both are TTYs
func interactive(r io.Reader, w io.Writer) (*os.File, *os.File, bool) {
	input, okInput := r.(*os.File)
	output, okOutput := w.(*os.File)
	if !okInput || !okOutput {
		return nil, nil, false
	}
	if !term.IsTerminal(int(input.Fd())) || !term.IsTerminal(int(output.Fd())) {
		return nil, nil, false
	}
	return input, output, true
}

// terminalSize reports the size of output, if it is a terminal
func terminalSize(output *os.File) (int, int, bool) {
	if output == nil {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(output.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func askAnswer(question string, list bool, input, output *os.File) (string, error) {
	model := newAnswerModel(question, list, output)
	program := tea.NewProgram(model, tea.WithInput(input), tea.WithOutput(output))
	result, err := program.Run()
	if err != nil {
		return "", err
	}
	m, ok := result.(answerModel)
	if !ok {
		return "", fmt.Errorf("unexpected answer model: %T", result)
	}
	if m.cancelled {
		return "", errors.New(i18n.MsgCancelled)
	}
	return m.editor.Value(), nil
}

func newAnswerModel(question string, list bool, output *os.File) answerModel {
	ed := textarea.New()
	ed.Prompt = "  > "
	ed.ShowLineNumbers = false

	width, height := editorDefaultWidth, entriesDefaultHeight
	if w, h, ok := terminalSize(output); ok {
		width = clamp(w-4, editorMinWidth, editorMaxWidth)
		height = clamp(h/3, entriesMinHeight, entriesMaxHeight)
	}
	if list {
		ed.Placeholder = i18n.MsgEntryPlaceholder
	} else {
		// Enter submits, so the editor never grows past one line
		ed.KeyMap.InsertNewline.SetEnabled(false)
		ed.MaxHeight = 1
		height = 1
	}
	ed.SetWidth(width)
	ed.SetHeight(height)

	focused, blurred := textarea.DefaultStyles()
	focused.Prompt = StyleMuted
	focused.Placeholder = StyleMuted
	focused.CursorLine = focused.Text
	blurred.Prompt = StyleMuted
	ed.FocusedStyle = focused
	ed.BlurredStyle = blurred
	ed.Focus()

	return answerModel{
		editor:   ed,
		question: question,
		list:     list,
	}
}

func (m answerModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m answerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if !m.list {
				m.submitted = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m answerModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	hint := i18n.MsgAnswerHint
	if m.list {
		hint = i18n.MsgEntriesHint
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleInfo.Render("?"), m.question)
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render("  " + hint))
	b.WriteString("\n")
	return b.String()
}

// entries turns raw answer lines into list entries: trimmed, without
// blanks, first spelling kept when the same entry repeats in another case
func entries(lines []string) []string {
	var out []string
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		key := strings.ToLower(entry)
		if entry == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entry)
	}
	return out
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
