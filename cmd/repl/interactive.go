package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/lisp-runtime/eval"
	"github.com/wippyai/lisp-runtime/reader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inputEchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyShown = 8

type entry struct {
	src    string
	out    string
	failed bool
}

type replModel struct {
	env     *eval.Env
	input   textinput.Model
	entries []entry
}

func newReplModel(env *eval.Env) *replModel {
	ti := textinput.New()
	ti.Placeholder = `(substring "hello" 1 3)`
	ti.Prompt = "lisp> "
	ti.Focus()
	return &replModel{env: env, input: ti}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			src := strings.TrimSpace(m.input.Value())
			if src != "" {
				m.entries = append(m.entries, m.evaluate(src))
			}
			m.input.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) evaluate(src string) entry {
	forms, err := reader.ReadAll(src)
	if err != nil {
		return entry{src: src, out: eval.Wrap(err).Error(), failed: true}
	}
	var out []string
	for _, form := range forms {
		res, err := evalForm(form, m.env)
		if err != nil {
			out = append(out, err.Error())
			return entry{src: src, out: strings.Join(out, "\n"), failed: true}
		}
		out = append(out, res.String())
	}
	return entry{src: src, out: strings.Join(out, "\n")}
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("lisp-runtime repl"))
	b.WriteString("\n\n")

	start := 0
	if len(m.entries) > historyShown {
		start = len(m.entries) - historyShown
	}
	for _, e := range m.entries[start:] {
		b.WriteString(inputEchoStyle.Render("lisp> " + e.src))
		b.WriteByte('\n')
		style := resultStyle
		if e.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(e.out))
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: eval • esc: quit • builtins: " +
		strings.Join(builtinNames(), " ")))
	b.WriteByte('\n')
	return b.String()
}

func runInteractive(env *eval.Env) error {
	p := tea.NewProgram(newReplModel(env))
	_, err := p.Run()
	return err
}
