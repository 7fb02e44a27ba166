package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/tokenschema/tokenschema"
)

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <schema-file>",
		Short: "Interactively type a document and watch the allowed-character set update live",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExplore(args[0])
		},
	}
	return cmd
}

func runExplore(schemaPath string) error {
	schema, err := loadSchemaFile(schemaPath)
	if err != nil {
		return err
	}

	parser, err := jsonschema.NewParser(schema)
	if err != nil {
		return err
	}

	m := &exploreModel{parser: parser}
	_, err = tea.NewProgram(m).Run()
	return err
}

var (
	styleAllowed = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleTyped   = lipgloss.NewStyle().Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// exploreModel is the bubbletea model driving the interactive walk: every
// keypress is offered to the parser as the next character, rejected
// keystrokes are reported without advancing state (spec.md §6's allowed /
// add-character contract, exercised one character at a time by a human
// instead of a sampler).
type exploreModel struct {
	parser   *jsonschema.ParserRoot
	typed    strings.Builder
	lastErr  error
	quitting bool
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "space":
		key = " "
	}

	// Anything other than a single printable rune (e.g. "tab", "enter",
	// "up") isn't a character the parser could ever be offered.
	runeKey := []rune(key)
	if len(runeKey) != 1 {
		return m, nil
	}

	for _, c := range runeKey {
		if m.parser.CanEnd() {
			m.lastErr = jsonschema.ErrParserExhausted
			break
		}
		if !strings.ContainsRune(m.parser.AllowedCharacters(), c) {
			m.lastErr = fmt.Errorf("%q is not allowed here", c)
			break
		}
		next, err := m.parser.AddCharacter(c)
		if err != nil {
			m.lastErr = err
			break
		}
		m.parser = next
		m.typed.WriteRune(c)
		m.lastErr = nil
	}

	return m, nil
}

func (m *exploreModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "typed: %s\n", styleTyped.Render(m.typed.String()))

	if m.parser.CanEnd() {
		fmt.Fprintln(&b, styleAllowed.Render("document complete — press esc to quit"))
	} else {
		fmt.Fprintf(&b, "allowed next: %s\n", styleAllowed.Render(fmt.Sprintf("%q", m.parser.AllowedCharacters())))
	}

	fmt.Fprintf(&b, "stack: %s\n", styleMuted.Render(fmt.Sprint(m.parser.Stack())))

	if m.lastErr != nil {
		fmt.Fprintf(&b, "%s\n", styleError.Render(m.lastErr.Error()))
	}

	fmt.Fprintln(&b, styleMuted.Render("esc to quit"))

	return tea.NewView(b.String())
}
