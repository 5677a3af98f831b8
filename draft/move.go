package draft

import "github.com/deepak-shinde14/demo-editor/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus
}

// MoveCaret moves the focus of s by m. Without Extend the selection
// collapses at the new position.
func MoveCaret(s EditorState, m Move) EditorState {
	from := s.sel.Focus
	if !m.Extend && !s.sel.IsCollapsed() {
		switch m.Dir {
		case DirLeft:
			from = s.sel.Start()
			return s.SetSelection(Collapsed(from.Key, from.Offset))
		case DirRight:
			from = s.sel.End()
			return s.SetSelection(Collapsed(from.Key, from.Offset))
		}
	}

	to := s.doc.movePos(from, m)
	if !m.Extend {
		return s.SetSelection(Collapsed(to.Key, to.Offset))
	}
	return s.SetSelection(NewSelection(s.doc, s.sel.Anchor, to))
}

func (d Document) movePos(p Pos, m Move) Pos {
	i := d.mustIndex(p.Key)
	b := d.blocks[i]
	off := b.clampOffset(p.Offset)

	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			if off > 0 {
				return Pos{Key: b.key, Offset: grapheme.Prev(b.Text(), off)}
			}
			if i > 0 {
				prev := d.blocks[i-1]
				return Pos{Key: prev.key, Offset: prev.Len()}
			}
			return Pos{Key: b.key, Offset: 0}
		case DirRight:
			if off < b.Len() {
				return Pos{Key: b.key, Offset: grapheme.Next(b.Text(), off)}
			}
			if i+1 < len(d.blocks) {
				return Pos{Key: d.blocks[i+1].key, Offset: 0}
			}
			return Pos{Key: b.key, Offset: off}
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return Pos{Key: b.key, Offset: prevWordBoundary(b.Text(), off)}
		case DirRight:
			return Pos{Key: b.key, Offset: nextWordBoundary(b.Text(), off)}
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{Key: d.blocks[0].key, Offset: 0}
		case DirEnd, DirDown:
			last := d.blocks[len(d.blocks)-1]
			return Pos{Key: last.key, Offset: last.Len()}
		}
	}

	switch m.Dir {
	case DirHome:
		return Pos{Key: b.key, Offset: 0}
	case DirEnd:
		return Pos{Key: b.key, Offset: b.Len()}
	case DirUp:
		if i == 0 {
			return Pos{Key: b.key, Offset: 0}
		}
		up := d.blocks[i-1]
		return Pos{Key: up.key, Offset: snapToCluster(up.Text(), off)}
	case DirDown:
		if i+1 >= len(d.blocks) {
			return Pos{Key: b.key, Offset: b.Len()}
		}
		down := d.blocks[i+1]
		return Pos{Key: down.key, Offset: snapToCluster(down.Text(), off)}
	}
	return Pos{Key: b.key, Offset: off}
}

// snapToCluster returns the last cluster boundary of text at or before off.
func snapToCluster(text string, off int) int {
	snapped := 0
	for _, b := range grapheme.Boundaries(text) {
		if b > off {
			break
		}
		snapped = b
	}
	return snapped
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - a block edge is a hard boundary
func prevWordBoundary(text string, off int) int {
	bounds := grapheme.Boundaries(text)
	clusters := grapheme.Split(text)
	i := clusterIndex(bounds, off)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return bounds[i]
}

func nextWordBoundary(text string, off int) int {
	bounds := grapheme.Boundaries(text)
	clusters := grapheme.Split(text)
	i := clusterIndex(bounds, off)
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return bounds[i]
}

// clusterIndex maps a rune offset to the index of the cluster boundary at or
// before it.
func clusterIndex(bounds []int, off int) int {
	idx := 0
	for i, b := range bounds {
		if b > off {
			break
		}
		idx = i
	}
	return idx
}
