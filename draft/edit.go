package draft

import "slices"

// span is a selection resolved to block indices and clamped offsets.
type span struct {
	startIdx, startOff int
	endIdx, endOff     int
}

func (d Document) span(s Selection) span {
	start, end := s.Start(), s.End()
	si, ei := d.mustIndex(start.Key), d.mustIndex(end.Key)
	if si > ei || (si == ei && start.Offset > end.Offset) {
		start, end = end, start
		si, ei = ei, si
	}
	return span{
		startIdx: si,
		startOff: d.blocks[si].clampOffset(start.Offset),
		endIdx:   ei,
		endOff:   d.blocks[ei].clampOffset(end.Offset),
	}
}

func (sp span) isEmpty() bool {
	return sp.startIdx == sp.endIdx && sp.startOff == sp.endOff
}

func (d Document) replaceBlockAt(i int, b Block) Document {
	blocks := slices.Clone(d.blocks)
	blocks[i] = b
	d.blocks = blocks
	return d
}

func (d Document) removeSpan(sp span) Document {
	if sp.isEmpty() {
		return d
	}
	start, end := d.blocks[sp.startIdx], d.blocks[sp.endIdx]

	var merged Block
	if sp.startIdx == sp.endIdx {
		merged = start.splice(sp.startOff, sp.endOff, nil, nil)
	} else {
		merged = start.splice(sp.startOff, start.Len(), end.text[sp.endOff:], end.chars[sp.endOff:])
	}

	blocks := make([]Block, 0, len(d.blocks)-(sp.endIdx-sp.startIdx))
	blocks = append(blocks, d.blocks[:sp.startIdx]...)
	blocks = append(blocks, merged)
	blocks = append(blocks, d.blocks[sp.endIdx+1:]...)
	return d.withBlocks(blocks)
}

// RemoveRange deletes the selected text, joining blocks when the selection
// spans more than one. The caret ends at the selection start.
func RemoveRange(d Document, s Selection) Document {
	sp := d.span(s)
	out := d.removeSpan(sp)
	caret := Collapsed(d.blocks[sp.startIdx].key, sp.startOff)
	return out.withSelections(s, caret)
}

// ReplaceText replaces the selection with text, giving every inserted
// character style. text is inserted into a single block; callers split
// blocks explicitly.
func ReplaceText(d Document, s Selection, text string, style StyleSet) Document {
	sp := d.span(s)
	out := d.removeSpan(sp)

	runes := []rune(text)
	b := out.blocks[sp.startIdx]
	nb := b.splice(sp.startOff, sp.startOff, runes, fillMeta(len(runes), charMeta{style: style}))
	out = out.replaceBlockAt(sp.startIdx, nb)

	return out.withSelections(s, Collapsed(nb.key, sp.startOff+len(runes)))
}

// InsertText inserts text at a collapsed selection.
func InsertText(d Document, s Selection, text string, style StyleSet) Document {
	return ReplaceText(d, s, text, style)
}

// SplitBlock removes the selection, then splits the block at the caret. The
// new block below gets a fresh key and keeps the original block type.
func SplitBlock(d Document, s Selection) Document {
	sp := d.span(s)
	out := d.removeSpan(sp)

	b := out.blocks[sp.startIdx]
	off := sp.startOff
	above := b.splice(off, b.Len(), nil, nil)
	below := b.withContent(slices.Clone(b.text[off:]), slices.Clone(b.chars[off:]))
	below.key = newKey(out.index)
	below.data = nil

	blocks := make([]Block, 0, len(out.blocks)+1)
	blocks = append(blocks, out.blocks[:sp.startIdx]...)
	blocks = append(blocks, above, below)
	blocks = append(blocks, out.blocks[sp.startIdx+1:]...)
	out = out.withBlocks(blocks)

	return out.withSelections(s, Collapsed(below.key, 0))
}

// SetBlockType sets typ on every block touched by the selection.
func SetBlockType(d Document, s Selection, typ BlockType) Document {
	sp := d.span(s)
	blocks := slices.Clone(d.blocks)
	for i := sp.startIdx; i <= sp.endIdx; i++ {
		blocks[i] = blocks[i].withType(typ)
	}
	d.blocks = blocks
	return d.withSelections(s, s)
}

// ApplyInlineStyle adds st to every selected character.
func ApplyInlineStyle(d Document, s Selection, st Style) Document {
	return d.mapSpanStyles(s, func(set StyleSet) StyleSet { return set.Add(st) })
}

// RemoveInlineStyle removes st from every selected character.
func RemoveInlineStyle(d Document, s Selection, st Style) Document {
	return d.mapSpanStyles(s, func(set StyleSet) StyleSet { return set.Remove(st) })
}

func (d Document) mapSpanStyles(s Selection, fn func(StyleSet) StyleSet) Document {
	sp := d.span(s)
	blocks := slices.Clone(d.blocks)
	for i := sp.startIdx; i <= sp.endIdx; i++ {
		from, to := 0, blocks[i].Len()
		if i == sp.startIdx {
			from = sp.startOff
		}
		if i == sp.endIdx {
			to = sp.endOff
		}
		blocks[i] = blocks[i].mapStyles(from, to, fn)
	}
	d.blocks = blocks
	return d.withSelections(s, s)
}
