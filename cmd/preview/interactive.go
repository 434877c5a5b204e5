package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HellButcher/thymeleaf-component-dialect/component"
	"github.com/HellButcher/thymeleaf-component-dialect/engine"
	"github.com/HellButcher/thymeleaf-component-dialect/hcleval"
	"github.com/HellButcher/thymeleaf-component-dialect/htmlmodel"
	"github.com/HellButcher/thymeleaf-component-dialect/loader"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	componentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	eng      *engine.Engine
	dir      string
	prefix   string
	comps    string
	maxDepth int
	result   string
	kinds    []kindInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type kindInfo struct {
	kind component.Kind
	sig  component.Signature
}

type modelState int

const (
	stateSelectComponent modelState = iota
	stateInputProps
	stateShowResult
)

func newInteractiveModel(dir, prefix, comps string, maxDepth int) *interactiveModel {
	return &interactiveModel{
		dir:      dir,
		prefix:   prefix,
		comps:    comps,
		maxDepth: maxDepth,
		state:    stateSelectComponent,
	}
}

type loadedMsg struct {
	err   error
	eng   *engine.Engine
	kinds []kindInfo
}

type renderResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadComponents
}

func (m *interactiveModel) loadComponents() tea.Msg {
	ctx := context.Background()

	registry, err := buildRegistry(m.prefix, m.comps)
	if err != nil {
		return loadedMsg{err: err}
	}

	ldr := loader.New(os.DirFS(m.dir), component.Names{Prefix: m.prefix})
	eng := engine.New(registry, ldr, hcleval.New(), engine.WithMaxDepth(m.maxDepth))

	var kinds []kindInfo
	for _, kind := range registry.Kinds() {
		ref := kind.TemplateRef()
		frag, err := ldr.Load(ctx, ref.Path, ref.Fragment)
		if err != nil {
			return loadedMsg{err: err}
		}
		kinds = append(kinds, kindInfo{kind: kind, sig: frag.Signature})
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].kind.QualifiedName() < kinds[j].kind.QualifiedName()
	})
	if len(kinds) == 0 {
		return loadedMsg{err: fmt.Errorf("no components registered, pass -components")}
	}

	return loadedMsg{eng: eng, kinds: kinds}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputProps || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectComponent && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectComponent && m.selected < len(m.kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectComponent:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.renderComponent
				}
				m.state = stateInputProps

			case stateInputProps:
				return m, m.renderComponent

			case stateShowResult:
				m.state = stateSelectComponent
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputProps && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputProps:
				m.state = stateSelectComponent
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectComponent
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.eng = msg.eng
		m.kinds = msg.kinds

	case renderResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputProps {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	k := m.kinds[m.selected]
	m.inputs = make([]textinput.Model, len(k.sig.Params))
	for i, p := range k.sig.Params {
		ti := textinput.New()
		ti.Placeholder = "expression or literal"
		ti.Prompt = p + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// renderComponent expands a synthetic invocation of the selected component
// with the entered parameter values as attributes.
func (m *interactiveModel) renderComponent() tea.Msg {
	ctx := context.Background()
	k := m.kinds[m.selected]
	names := k.kind.Names()

	var attrs model.Attrs
	for i, input := range m.inputs {
		attrs = append(attrs, model.Attr{
			Name:     names.Prefix + ":" + k.sig.Params[i],
			Value:    input.Value(),
			HasValue: input.Value() != "",
		})
	}
	doc := model.Model{model.StandaloneTag{Name: k.kind.QualifiedName(), Attrs: attrs, Minimized: true}}

	expanded, err := m.eng.Render(ctx, doc, nil)
	if err != nil {
		return renderResultMsg{err: err}
	}
	return renderResultMsg{result: string(htmlmodel.Render(expanded))}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.kinds) == 0 {
		return "Loading components..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Component Preview"))
	b.WriteString(" ")
	b.WriteString(m.dir)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectComponent:
		b.WriteString("Select a component to render:\n\n")
		for i, k := range m.kinds {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatKind(k)))
			} else {
				b.WriteString(cursor + m.formatKind(k))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter render • q quit"))

	case stateInputProps:
		k := m.kinds[m.selected]
		b.WriteString(fmt.Sprintf("Rendering %s\n\n", componentStyle.Render(k.kind.QualifiedName())))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter render • esc back"))

	case stateShowResult:
		k := m.kinds[m.selected]
		b.WriteString(fmt.Sprintf("Output of %s:\n\n", componentStyle.Render(k.kind.QualifiedName())))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatKind(k kindInfo) string {
	var params []string
	for _, p := range k.sig.Params {
		params = append(params, paramStyle.Render(p))
	}
	ref := k.kind.TemplateRef()
	return componentStyle.Render(k.kind.QualifiedName()) +
		"(" + strings.Join(params, ", ") + ") " +
		helpStyle.Render(ref.String())
}

func runInteractive(dir, prefix, comps string, maxDepth int) error {
	p := tea.NewProgram(newInteractiveModel(dir, prefix, comps, maxDepth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
