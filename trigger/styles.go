package trigger

import "github.com/deepak-shinde14/demo-editor/draft"

// StyleKind is a formatting a trigger can produce.
type StyleKind int

const (
	Heading StyleKind = iota
	Bold
	HighlightColor
	Underline
)

// Inline style identifiers produced by triggers.
const (
	StyleBold      draft.Style = "BOLD"
	StyleRed       draft.Style = "RED"
	StyleUnderline draft.Style = "UNDERLINE"
)

type kindSpec struct {
	name    string
	trigger string
	block   draft.BlockType
	inline  draft.Style
}

var kinds = [...]kindSpec{
	Heading:        {name: "heading", trigger: "#", block: draft.BlockHeaderOne},
	Bold:           {name: "bold", trigger: "*", inline: StyleBold},
	HighlightColor: {name: "highlight-color", trigger: "**", inline: StyleRed},
	Underline:      {name: "underline", trigger: "***", inline: StyleUnderline},
}

// Kinds returns every StyleKind in trigger-length order.
func Kinds() []StyleKind {
	return []StyleKind{Heading, Bold, HighlightColor, Underline}
}

func (k StyleKind) valid() bool { return k >= 0 && int(k) < len(kinds) }

func (k StyleKind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

// Trigger returns the literal text that, followed by a space, produces k.
func (k StyleKind) Trigger() string { return kinds[k].trigger }

// TriggerLen is the trigger length in characters.
func (k StyleKind) TriggerLen() int { return len([]rune(kinds[k].trigger)) }

// IsBlock reports whether k changes the block type rather than inline style.
func (k StyleKind) IsBlock() bool { return kinds[k].block != "" }

// BlockType is the block type k applies; empty for inline kinds.
func (k StyleKind) BlockType() draft.BlockType { return kinds[k].block }

// InlineStyle is the inline style k applies; empty for block kinds.
func (k StyleKind) InlineStyle() draft.Style { return kinds[k].inline }

// Exclusive reports whether st belongs to the group of inline styles of
// which at most one is active at a position. Styles no trigger produces are
// treated as exclusive, so applying a trigger style clears them too.
func Exclusive(st draft.Style) bool {
	for _, coexisting := range coexistingStyles {
		if st == coexisting {
			return false
		}
	}
	return true
}

// coexistingStyles may stay active next to a trigger style. Empty for now:
// every active style is replaced.
var coexistingStyles []draft.Style

// VisualEffect describes how a custom inline style renders.
type VisualEffect struct {
	Color          string // CSS color name or #rrggbb
	TextDecoration string // "underline" or ""
	FontWeight     string // "bold" or ""
}

// CustomStyleMap returns the rendering descriptors for the custom inline
// styles. BOLD is not listed; renderers treat it as a built-in.
func CustomStyleMap() map[draft.Style]VisualEffect {
	return map[draft.Style]VisualEffect{
		StyleRed:       {Color: "red"},
		StyleUnderline: {TextDecoration: "underline"},
	}
}
