package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/ariax"
)

const cellWidth = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cellStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	activeCell    = cellStyle.BorderForeground(lipgloss.Color("205")).Bold(true)
	widgetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func renderListbox(lb *ariax.Listbox) string {
	opts := lb.Options()
	var entries []string
	for _, it := range lb.Items() {
		st, _ := lb.Item(it.Identity)
		mark := "  "
		if st.Selected {
			mark = selectedStyle.Render("✓ ")
		}
		style := lipgloss.NewStyle()
		if st.Disabled {
			style = disabledStyle
		}
		if st.Active {
			style = style.Inherit(activeStyle)
		}
		entries = append(entries, mark+style.Render(it.Label))
	}
	var body string
	if opts.Orientation == string(ariax.Horizontal) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced(entries)...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, entries...)
	}
	title := "listbox"
	if opts.Multiple {
		title += " (multiple)"
	}
	if lb.Disabled() {
		title += " (disabled)"
	}
	status := fmt.Sprintf("tabindex=%d activedescendant=%q", lb.Tabindex(), lb.ActiveDescendantID())
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		boxStyle.Render(body),
		hintStyle.Render(status),
	)
}

func renderGrid(g *ariax.Grid) string {
	nav := g.Navigation()
	var rows []string
	for _, row := range g.Rows() {
		var cells []string
		for _, c := range row {
			label := c.Label
			if len(c.Widgets) > 0 {
				var names []string
				for _, w := range c.Widgets {
					name := w.Label
					if w == nav.Widget {
						name = activeStyle.Render(name)
					}
					names = append(names, name)
				}
				label += " " + widgetStyle.Render("["+strings.Join(names, " ")+"]")
			}
			style := cellStyle
			if c == nav.Cell {
				style = activeCell
			}
			if c.IsDisabled() {
				style = style.Faint(true)
			}
			// borders of the spanned columns become content width
			style = style.Width(cellWidth*c.ColSpan + 4*(c.ColSpan-1))
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	mode := "cell"
	if nav.InWidgetMode {
		mode = "widget"
	}
	status := fmt.Sprintf("%dx%d mode=%s row=%d col=%d", g.RowCount(), g.ColCount(), mode, nav.CellIndex.Row, nav.CellIndex.Col)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("grid"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		hintStyle.Render(status),
	)
}

func spaced(entries []string) []string {
	out := make([]string, 0, 2*len(entries))
	for i, e := range entries {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, e)
	}
	return out
}
