package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphloom/pkg/canvas"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var detailBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Padding(0, 1)

// =============================================================================
// Tree rows
// =============================================================================

// treeRow is one visible line of the canvas tree. Path joins the ids from
// the root because ids are only unique per scope.
type treeRow struct {
	Node  *canvas.Node
	Path  string
	Depth int
}

// flattenCanvas lists the visible nodes depth first. Children of collapsed
// paths are skipped.
func flattenCanvas(c *canvas.Canvas, collapsed map[string]bool) []treeRow {
	var rows []treeRow
	var visit func(nodes []*canvas.Node, prefix string, depth int)
	visit = func(nodes []*canvas.Node, prefix string, depth int) {
		for _, n := range nodes {
			path := n.ID
			if prefix != "" {
				path = prefix + "/" + n.ID
			}
			rows = append(rows, treeRow{Node: n, Path: path, Depth: depth})
			if !collapsed[path] {
				visit(n.Children, path, depth+1)
			}
		}
	}
	visit(c.Children, "", 0)
	return rows
}

// rowText renders the tree marker, label and type of a row.
func rowText(r treeRow, collapsed bool) string {
	marker := "  "
	if r.Node.IsSubgraph() {
		marker = "▾ "
		if collapsed {
			marker = "▸ "
		}
	}
	text := r.Node.Text()
	if text != r.Node.ID {
		text += " (" + r.Node.ID + ")"
	}
	return strings.Repeat("  ", r.Depth) + marker + text
}

// renderTree draws the whole canvas as an indented tree, for --plain.
func renderTree(c *canvas.Canvas) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(c.ID))
	b.WriteString("\n")
	for _, r := range flattenCanvas(c, nil) {
		line := rowText(r, false)
		switch {
		case r.Node.IsSubgraph():
			line = styleSubgraph.Render(line)
		default:
			line = listNormalStyle.Render(line) + " " + listDimStyle.Render(r.Node.Type)
		}
		b.WriteString(line)
		if len(r.Node.Ports) > 0 {
			ids := make([]string, len(r.Node.Ports))
			for i, p := range r.Node.Ports {
				ids[i] = p.ID
			}
			b.WriteString(" " + stylePort.Render("["+strings.Join(ids, ", ")+"]"))
		}
		b.WriteString("\n")
	}
	st := c.Stats()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %s · %s · %s",
		fmtCount(st.Nodes, "node"), fmtCount(st.Subgraphs, "subgraph"),
		fmtCount(st.Ports, "port"), fmtCount(st.Edges, "edge"))))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// CanvasModel - Interactive canvas browser
// =============================================================================

// CanvasModel is the bubbletea model for browsing a built canvas.
type CanvasModel struct {
	Canvas    *canvas.Canvas
	Source    string
	Collapsed map[string]bool
	Rows      []treeRow
	Cursor    int
	Height    int
	Offset    int
}

// NewCanvasModel creates a browser with every subgraph expanded.
func NewCanvasModel(c *canvas.Canvas, source string) CanvasModel {
	m := CanvasModel{
		Canvas:    c,
		Source:    source,
		Collapsed: make(map[string]bool),
		Height:    15,
	}
	m.Rows = flattenCanvas(c, m.Collapsed)
	return m
}

func (m CanvasModel) Init() tea.Cmd {
	return nil
}

func (m CanvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		case "enter", " ":
			m.toggle(!m.Collapsed[m.current().Path])
		case "left", "h":
			m.toggle(true)
		case "right", "l":
			m.toggle(false)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	m.scroll()
	return m, nil
}

func (m *CanvasModel) current() treeRow {
	if len(m.Rows) == 0 {
		return treeRow{Node: &canvas.Node{}}
	}
	return m.Rows[m.Cursor]
}

// toggle collapses or expands the selected subgraph. The Collapsed map is
// replaced rather than mutated because bubbletea models are values.
func (m *CanvasModel) toggle(collapse bool) {
	row := m.current()
	if !row.Node.IsSubgraph() || m.Collapsed[row.Path] == collapse {
		return
	}
	next := make(map[string]bool, len(m.Collapsed)+1)
	for k, v := range m.Collapsed {
		next[k] = v
	}
	next[row.Path] = collapse
	m.Collapsed = next
	m.Rows = flattenCanvas(m.Canvas, m.Collapsed)
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
}

func (m *CanvasModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m CanvasModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Canvas " + m.Source))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	var lines []string
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		line := truncate(rowText(r, m.Collapsed[r.Path]), 48)
		switch {
		case i == m.Cursor:
			line = listSelectedStyle.Render("▸ " + line)
		case r.Node.IsSubgraph():
			line = "  " + styleSubgraph.Render(line)
		default:
			line = "  " + listNormalStyle.Render(line)
		}
		lines = append(lines, line)
	}
	tree := strings.Join(lines, "\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(54).Render(tree),
		detailBoxStyle.Render(nodeDetail(m.current()))))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// nodeDetail describes the selected node for the side pane.
func nodeDetail(r treeRow) string {
	n := r.Node
	var b strings.Builder
	kv := func(k, v string) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%-10s", k)) + " " + v + "\n")
	}

	b.WriteString(StyleHighlight.Render(r.Path) + "\n")
	kv("label", n.Text())
	kv("type", n.Type)
	if n.Icon != "" {
		kv("icon", n.Icon)
	}
	if n.Width != nil && n.Height != nil {
		kv("size", fmtSize(*n.Width, *n.Height))
	}
	if n.IsSubgraph() {
		kv("children", fmt.Sprint(len(n.Children)))
		kv("edges", fmt.Sprint(len(n.Edges)))
	}
	for _, p := range n.Ports {
		text := p.ID
		if len(p.Labels) > 0 && p.Labels[0].Text != p.ID {
			text += " " + listDimStyle.Render(p.Labels[0].Text)
		}
		if i, ok := p.Index(); ok {
			text += listDimStyle.Render(fmt.Sprintf(" #%d", i))
		}
		kv("port", stylePort.Render(text))
	}
	for _, k := range n.Properties.Keys() {
		kv("", listDimStyle.Render(truncate(k, 40)+" = ")+n.Properties[k].String())
	}
	return strings.TrimRight(b.String(), "\n")
}
