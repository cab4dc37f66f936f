package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/outlinekit/forest"
)

var (
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	bulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type appModel struct {
	cur      forest.Cursor[item]
	path     string
	readOnly bool
	dirty    bool
	status   string
	height   int
}

func newAppModel(cur forest.Cursor[item], path string, readOnly bool) appModel {
	return appModel{cur: cur, path: path, readOnly: readOnly}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if n, ok := m.cur.NextPreOrder(); ok {
			m.cur = n
		}
	case "k", "up":
		if p, ok := m.cur.PrevPreOrder(); ok {
			m.cur = p
		}
	case "g":
		if c, err := forest.MakeCursor(m.cur.Forest()); err == nil {
			m.cur = c
		}

	case "K", "shift+up":
		moved, ok, err := forest.MoveUp(m.cur, itemID)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			break
		}
		if ok {
			m.cur = moved
			m.dirty = true
		}
	case "J", "shift+down":
		moved, ok, err := forest.MoveDown(m.cur, itemID)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			break
		}
		if ok {
			m.cur = moved
			m.dirty = true
		}

	case ">", "tab":
		// Indent under the previous sibling, keeping its children above.
		if ps, ok := m.cur.PrevSibling(); ok {
			moved, err := forest.MoveToLastChildOf(m.cur, itemID(ps.Label()), itemID)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				break
			}
			m.cur = moved
			m.dirty = true
		}
	case "<", "shift+tab":
		// Outdent to sit right after the parent.
		if p, ok := m.cur.Parent(); ok {
			moved, err := forest.MoveToAfter(m.cur, itemID(p.Label()), itemID)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				break
			}
			m.cur = moved
			m.dirty = true
		}

	case "s":
		if m.readOnly {
			m.status = errorStyle.Render("read-only mode")
			break
		}
		if err := saveOutline(m.path, m.cur.Forest()); err != nil {
			m.status = errorStyle.Render(err.Error())
			break
		}
		m.dirty = false
		m.status = statusStyle.Render("saved " + m.path)
	}
	return m, nil
}

func (m appModel) View() string {
	var b strings.Builder
	selected := itemID(m.cur.Label())
	for _, row := range m.cur.Forest().Rows() {
		line := strings.Repeat("  ", row.Depth) + bulletStyle.Render("•") + " " + row.Value.title
		if itemID(row.Value) == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

func (m appModel) footer() string {
	name := m.path
	if m.dirty {
		name += " [+]"
	}
	help := "j/k move · K/J reorder · >/< indent/outdent · s save · q quit"
	if m.status != "" {
		help = m.status
	}
	return statusStyle.Render(fmt.Sprintf("%s — %s", name, help))
}
