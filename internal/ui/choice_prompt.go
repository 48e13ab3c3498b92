package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/betteros/goal-crew/internal/i18n"
)

const (
	choiceMinHeight = 4
	choiceMaxHeight = 14
)

type choiceItem string

func (i choiceItem) FilterValue() string { return string(i) }

// choiceDelegate numbers each option the way the plain-text fallback does
type choiceDelegate struct{}

func (choiceDelegate) Height() int                         { return 1 }
func (choiceDelegate) Spacing() int                        { return 0 }
func (choiceDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	option, ok := item.(choiceItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%d. %s", index+1, option)
	if index == m.Index() {
		fmt.Fprint(w, StylePrimary.Render("> "+line))
		return
	}
	fmt.Fprint(w, StyleMuted.Render("  "+line))
}

// choiceModel picks one option with the arrows and Enter, or directly by
// typing its number
type choiceModel struct {
	list      list.Model
	options   int
	chosen    int
	cancelled bool
}

func askChoice(question string, options []string, input, output *os.File) (int, error) {
	if len(options) == 0 {
		return 0, errors.New(i18n.MsgNoOptions)
	}
	program := tea.NewProgram(newChoiceModel(question, options, output), tea.WithInput(input), tea.WithOutput(output))
	result, err := program.Run()
	if err != nil {
		return 0, err
	}
	m, ok := result.(choiceModel)
	if !ok {
		return 0, fmt.Errorf("unexpected choice model: %T", result)
	}
	if m.cancelled {
		return 0, errors.New(i18n.MsgCancelled)
	}
	return m.chosen, nil
}

func newChoiceModel(question string, options []string, output *os.File) choiceModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = choiceItem(opt)
	}

	width := editorDefaultWidth
	height := clamp(len(options)+3, choiceMinHeight, choiceMaxHeight)
	if w, h, ok := terminalSize(output); ok {
		width = clamp(w-4, editorMinWidth, editorMaxWidth)
		height = clamp(len(options)+3, choiceMinHeight, clamp(h/2, choiceMinHeight, choiceMaxHeight))
	}

	l := list.New(items, choiceDelegate{}, width, height)
	l.Title = question
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = StyleTitle
	l.Styles.PaginationStyle = StyleMuted

	return choiceModel{
		list:    l,
		options: len(options),
		chosen:  -1,
	}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(clamp(msg.Width-4, editorMinWidth, editorMaxWidth))
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.chosen = m.list.Index()
			return m, tea.Quit
		case tea.KeyRunes:
			if len(msg.Runes) == 1 {
				if n := int(msg.Runes[0] - '0'); n >= 1 && n <= m.options {
					m.chosen = n - 1
					return m, tea.Quit
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m choiceModel) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render("  " + fmt.Sprintf(i18n.MsgChoiceHint, m.options)))
	b.WriteString("\n")
	return b.String()
}
