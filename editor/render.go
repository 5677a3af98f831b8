package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/internal/grapheme"
)

// RenderDocument renders doc without a caret, one line per block.
func RenderDocument(doc draft.Document, style Style, lineNums bool) string {
	r := renderer{style: style, doc: doc, lineNums: lineNums, activeRow: -1}
	return r.render()
}

func (m *Model) renderContent() string {
	doc := m.state.Document()
	r := renderer{
		style:     m.cfg.Style,
		doc:       doc,
		lineNums:  m.cfg.ShowLineNums,
		activeRow: -1,
	}
	if m.focused {
		r.sel = m.state.Selection()
		r.hasSel = true
		r.activeRow = doc.IndexOf(r.sel.Focus.Key)
	}
	if m.cfg.Placeholder != "" && isBlank(doc) {
		return r.placeholder(m.cfg.Placeholder)
	}
	return r.render()
}

func isBlank(doc draft.Document) bool {
	if doc.BlockCount() != 1 {
		return false
	}
	b := doc.FirstBlock()
	return b.Len() == 0 && b.Type() == draft.BlockUnstyled
}

type renderer struct {
	style    Style
	doc      draft.Document
	lineNums bool

	sel       draft.Selection
	hasSel    bool
	activeRow int
}

func (r renderer) render() string {
	blocks := r.doc.Blocks()
	digits := gutterDigits(len(blocks))

	out := make([]string, 0, len(blocks))
	for row, b := range blocks {
		var sb strings.Builder
		if r.lineNums {
			sb.WriteString(r.gutter(row, digits))
		}
		sb.WriteString(r.block(row, b))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (r renderer) gutter(row, digits int) string {
	numStyle := r.style.LineNum
	if row == r.activeRow {
		numStyle = r.style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + r.style.Gutter.Render(" ")
}

func (r renderer) placeholder(text string) string {
	var sb strings.Builder
	if r.lineNums {
		sb.WriteString(r.gutter(0, 1))
	}
	if !r.hasSel {
		sb.WriteString(r.style.Placeholder.Render(text))
		return sb.String()
	}
	clusters := grapheme.Split(text)
	sb.WriteString(r.style.Cursor.Inherit(r.style.Placeholder).Render(clusters[0]))
	sb.WriteString(r.style.Placeholder.Render(strings.Join(clusters[1:], "")))
	return sb.String()
}

// selectedRange returns the selected rune range [from, to) of block row.
func (r renderer) selectedRange(row int, b draft.Block) (from, to int) {
	if !r.hasSel || r.sel.IsCollapsed() {
		return 0, 0
	}
	start, end := r.sel.Start(), r.sel.End()
	si, ei := r.doc.IndexOf(start.Key), r.doc.IndexOf(end.Key)
	if row < si || row > ei {
		return 0, 0
	}
	from, to = 0, b.Len()
	if row == si {
		from = start.Offset
	}
	if row == ei {
		to = end.Offset
	}
	return from, to
}

type cellState struct {
	set      draft.StyleSet
	selected bool
	cursor   bool
}

func (c cellState) same(o cellState) bool {
	return c.selected == o.selected && c.cursor == o.cursor && c.set.Equal(o.set)
}

// block renders one block, grouping adjacent graphemes that share a style
// into a single run.
func (r renderer) block(row int, b draft.Block) string {
	base := r.style.blockStyle(b.Type())
	text := b.Text()
	bounds := grapheme.Boundaries(text)
	clusters := grapheme.Split(text)

	caret := -1
	if row == r.activeRow {
		caret = r.sel.Focus.Offset
	}
	selFrom, selTo := r.selectedRange(row, b)

	var sb strings.Builder
	var run strings.Builder
	var cur cellState
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(r.cellStyle(base, cur).Render(run.String()))
		run.Reset()
	}

	for i, c := range clusters {
		off := bounds[i]
		st := cellState{
			set:      b.StyleAt(off),
			selected: off >= selFrom && off < selTo,
			cursor:   off == caret,
		}
		if !st.same(cur) {
			flush()
			cur = st
		}
		run.WriteString(c)
	}
	flush()

	if caret >= b.Len() {
		st := cellState{cursor: true}
		if b.Len() > 0 {
			st.set = b.StyleAt(b.Len() - 1)
		}
		sb.WriteString(r.cellStyle(base, st).Render(" "))
	}
	return sb.String()
}

func (r renderer) cellStyle(base lipgloss.Style, c cellState) lipgloss.Style {
	s := r.style.runStyle(base, c.set)
	if c.selected {
		s = r.style.Selection.Inherit(s)
	}
	if c.cursor {
		s = r.style.Cursor.Inherit(s)
	}
	return s
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// statusLine shows the caret's block type, the active inline style and the
// save state, truncated to the editor width.
func (m Model) statusLine() string {
	parts := []string{string(m.state.CurrentBlock().Type())}
	if st := m.state.CurrentInlineStyle(); !st.IsEmpty() {
		parts = append(parts, st.String())
	}
	if m.Dirty() {
		parts = append(parts, "modified")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	line := strings.Join(parts, " · ")
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}
	return m.cfg.Style.Status.Render(line)
}
