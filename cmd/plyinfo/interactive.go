package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/plykit/parser"
	"github.com/wippyai/plykit/ply"
)

type modelState int

const (
	stateSelectElement modelState = iota
	stateShowRecords
)

type interactiveModel struct {
	err      error
	ctx      context.Context
	parser   *parser.Parser[ply.DefaultElement]
	model    *ply.Ply[ply.DefaultElement]
	st       styles
	filename string
	viewport viewport.Model
	selected int
	width    int
	height   int
	state    modelState
}

type loadedMsg struct {
	err   error
	model *ply.Ply[ply.DefaultElement]
}

func newInteractiveModel(ctx context.Context, p *parser.Parser[ply.DefaultElement], filename string) *interactiveModel {
	return &interactiveModel{
		ctx:      ctx,
		parser:   p,
		st:       newStyles(true),
		filename: filename,
		viewport: viewport.New(80, 20),
		state:    stateSelectElement,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer f.Close()

	model, err := m.parser.ReadPly(m.ctx, f)
	return loadedMsg{model: model, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-4)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectElement && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectElement && m.model != nil && m.selected < len(m.model.Header.Elements)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectElement && m.model != nil && len(m.model.Header.Elements) > 0 {
				def := &m.model.Header.Elements[m.selected]
				records, _ := m.model.Payload.Get(def.Name)
				m.viewport.SetContent(formatRecords(def, records))
				m.viewport.GotoTop()
				m.state = stateShowRecords
				return m, nil
			}

		case "esc":
			if m.state == stateShowRecords {
				m.state = stateSelectElement
				return m, nil
			}
		}

	case loadedMsg:
		m.err = msg.err
		m.model = msg.model
		return m, nil
	}

	if m.state == stateShowRecords {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return m.st.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.model == nil {
		return "Loading " + m.filename + "..."
	}

	var b strings.Builder

	b.WriteString(m.st.title.Render("PLY Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(m.st.typ.Render(m.model.Header.Encoding.String() + " " + m.model.Header.Version.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectElement:
		b.WriteString("Select an element:\n\n")
		for i := range m.model.Header.Elements {
			line := m.formatElement(&m.model.Header.Elements[i])
			if i == m.selected {
				b.WriteString(m.st.selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.st.help.Render("↑/↓ select • enter records • q quit"))

	case stateShowRecords:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(m.st.help.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • esc back • q quit", m.viewport.ScrollPercent()*100)))
	}

	return b.String()
}

func (m *interactiveModel) formatElement(def *ply.ElementDef) string {
	props := make([]string, 0, len(def.Properties))
	for _, p := range def.Properties {
		props = append(props, p.Name+": "+m.st.typ.Render(p.Type.String()))
	}
	return m.st.element.Render(def.Name) + fmt.Sprintf(" (%d) ", def.Count) + strings.Join(props, ", ")
}

func runInteractive(ctx context.Context, p *parser.Parser[ply.DefaultElement], filename string) error {
	prog := tea.NewProgram(newInteractiveModel(ctx, p, filename), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
