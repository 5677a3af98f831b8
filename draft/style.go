package draft

import (
	"slices"
	"strings"
)

// Style identifies an inline style, e.g. "BOLD".
type Style string

// BlockType tags a block, e.g. "unstyled" or "header-one". Unknown types are
// carried verbatim.
type BlockType string

const (
	BlockUnstyled  BlockType = "unstyled"
	BlockHeaderOne BlockType = "header-one"
)

// StyleSet is an immutable, sorted set of inline styles.
// The zero value is the empty set.
type StyleSet struct {
	styles []Style
}

func NewStyleSet(styles ...Style) StyleSet {
	var s StyleSet
	for _, st := range styles {
		s = s.Add(st)
	}
	return s
}

func (s StyleSet) Len() int { return len(s.styles) }

func (s StyleSet) IsEmpty() bool { return len(s.styles) == 0 }

func (s StyleSet) Has(st Style) bool {
	_, ok := slices.BinarySearch(s.styles, st)
	return ok
}

// Add returns a set that also contains st.
func (s StyleSet) Add(st Style) StyleSet {
	i, ok := slices.BinarySearch(s.styles, st)
	if ok {
		return s
	}
	out := make([]Style, 0, len(s.styles)+1)
	out = append(out, s.styles[:i]...)
	out = append(out, st)
	out = append(out, s.styles[i:]...)
	return StyleSet{styles: out}
}

// Remove returns a set without st.
func (s StyleSet) Remove(st Style) StyleSet {
	i, ok := slices.BinarySearch(s.styles, st)
	if !ok {
		return s
	}
	if len(s.styles) == 1 {
		return StyleSet{}
	}
	out := make([]Style, 0, len(s.styles)-1)
	out = append(out, s.styles[:i]...)
	out = append(out, s.styles[i+1:]...)
	return StyleSet{styles: out}
}

// Slice returns the styles in sorted order.
func (s StyleSet) Slice() []Style {
	return slices.Clone(s.styles)
}

func (s StyleSet) Equal(o StyleSet) bool {
	return slices.Equal(s.styles, o.styles)
}

func (s StyleSet) String() string {
	parts := make([]string, len(s.styles))
	for i, st := range s.styles {
		parts[i] = string(st)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
