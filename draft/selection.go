package draft

// Pos points at a character offset (in runes) inside the block with Key.
type Pos struct {
	Key    string
	Offset int
}

// Selection is an anchor/focus pair. Backward is true when the focus comes
// before the anchor in document order.
type Selection struct {
	Anchor   Pos
	Focus    Pos
	Backward bool
}

// Collapsed returns a caret selection at (key, off).
func Collapsed(key string, off int) Selection {
	p := Pos{Key: key, Offset: off}
	return Selection{Anchor: p, Focus: p}
}

// NewSelection orders anchor and focus against d to set Backward.
func NewSelection(d Document, anchor, focus Pos) Selection {
	return Selection{
		Anchor:   anchor,
		Focus:    focus,
		Backward: d.ComparePos(focus, anchor) < 0,
	}
}

func (s Selection) IsCollapsed() bool { return s.Anchor == s.Focus }

// Start returns the earlier of anchor and focus.
func (s Selection) Start() Pos {
	if s.Backward {
		return s.Focus
	}
	return s.Anchor
}

// End returns the later of anchor and focus.
func (s Selection) End() Pos {
	if s.Backward {
		return s.Anchor
	}
	return s.Focus
}

// Collapse returns a caret at the selection end (toStart=false) or start.
func (s Selection) Collapse(toStart bool) Selection {
	p := s.End()
	if toStart {
		p = s.Start()
	}
	return Collapsed(p.Key, p.Offset)
}
