package views

import (
	"fmt"
	"strings"

	"matchwalk/internal/render"
)

// cellWidth is the printed width of one grid column: a 3-wide character box
// plus one column of gap
const cellWidth = 4

// Renderer turns the grid model into styled terminal lines
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the given styles
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// GridLines renders the four grid rows: pattern index labels, pattern cells,
// text cells and text index labels. Label rows are omitted when showLabels
// is false. All rows are column-aligned, absent cells render as blanks.
func (r *Renderer) GridLines(g render.Grid, textLen int, showLabels bool) []string {
	lines := make([]string, 0, 4)
	if showLabels {
		lines = append(lines, r.labelRow(g.PatternLabels, textLen))
	}
	lines = append(lines,
		r.cellRow(g.PatternCells, textLen),
		r.cellRow(g.TextCells, textLen),
	)
	if showLabels {
		lines = append(lines, r.labelRow(g.TextLabels, textLen))
	}
	return lines
}

func (r *Renderer) cellRow(cells []render.Cell, textLen int) string {
	byCol := make(map[int]render.Cell, len(cells))
	for _, c := range cells {
		byCol[c.Column] = c
	}

	var b strings.Builder
	for col := 0; col < textLen; col++ {
		c, ok := byCol[col]
		if !ok {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		box := fmt.Sprintf(" %c ", c.Char)
		b.WriteString(r.styles.CellStyle(c.Highlight).Render(box))
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

func (r *Renderer) labelRow(labels []render.Label, textLen int) string {
	byCol := make(map[int]render.Label, len(labels))
	for _, l := range labels {
		byCol[l.Column] = l
	}

	var b strings.Builder
	for col := 0; col < textLen; col++ {
		l, ok := byCol[col]
		if !ok {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		b.WriteString(r.styles.Label.Render(fmt.Sprintf("%-3d", l.Index)))
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Legend renders one line naming each highlight class in its own color
func (r *Renderer) Legend() string {
	entries := []struct {
		hl   render.Highlight
		name string
	}{
		{render.HighlightDefault, "default"},
		{render.HighlightComparing, "comparing"},
		{render.HighlightMismatch, "mismatch"},
		{render.HighlightMatch, "match"},
		{render.HighlightFound, "found"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.styles.CellStyle(e.hl).Render(" ")+" "+e.name)
	}
	return r.styles.Legend.Render("legend: ") + strings.Join(parts, "  ")
}
