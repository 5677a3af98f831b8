package draft

import (
	"bytes"
	"encoding/json"
	"slices"
)

type charMeta struct {
	style  StyleSet
	entity string // entity map key; "" when the character carries none
}

// Block is one logical line of a Document.
type Block struct {
	key   string
	typ   BlockType
	text  []rune
	chars []charMeta // len(chars) == len(text)
	depth int
	data  json.RawMessage
}

// NewBlock returns a block whose characters all carry style.
func NewBlock(key string, typ BlockType, text string, style StyleSet) Block {
	if typ == "" {
		typ = BlockUnstyled
	}
	runes := []rune(text)
	return Block{
		key:   key,
		typ:   typ,
		text:  runes,
		chars: fillMeta(len(runes), charMeta{style: style}),
	}
}

func (b Block) Key() string { return b.key }

func (b Block) Type() BlockType { return b.typ }

func (b Block) Text() string { return string(b.text) }

// Len returns the block length in runes.
func (b Block) Len() int { return len(b.text) }

func (b Block) Depth() int { return b.depth }

// Data returns the block's opaque data object.
func (b Block) Data() json.RawMessage { return slices.Clone(b.data) }

// StyleAt returns the style of the character at off.
func (b Block) StyleAt(off int) StyleSet {
	if off < 0 || off >= len(b.chars) {
		return StyleSet{}
	}
	return b.chars[off].style
}

// EntityAt returns the entity key of the character at off, or "".
func (b Block) EntityAt(off int) string {
	if off < 0 || off >= len(b.chars) {
		return ""
	}
	return b.chars[off].entity
}

func (b Block) clampOffset(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(b.text) {
		return len(b.text)
	}
	return off
}

func (b Block) withType(typ BlockType) Block {
	b.typ = typ
	return b
}

func (b Block) withContent(text []rune, chars []charMeta) Block {
	b.text = text
	b.chars = chars
	return b
}

// splice replaces [start, end) with text/chars and returns a block with fresh
// backing arrays.
func (b Block) splice(start, end int, text []rune, chars []charMeta) Block {
	start, end = b.clampOffset(start), b.clampOffset(end)
	if end < start {
		start, end = end, start
	}
	nt := make([]rune, 0, len(b.text)-(end-start)+len(text))
	nt = append(nt, b.text[:start]...)
	nt = append(nt, text...)
	nt = append(nt, b.text[end:]...)

	nc := make([]charMeta, 0, len(nt))
	nc = append(nc, b.chars[:start]...)
	nc = append(nc, chars...)
	nc = append(nc, b.chars[end:]...)
	return b.withContent(nt, nc)
}

func (b Block) mapStyles(start, end int, fn func(StyleSet) StyleSet) Block {
	start, end = b.clampOffset(start), b.clampOffset(end)
	if start >= end {
		return b
	}
	nc := slices.Clone(b.chars)
	for i := start; i < end; i++ {
		nc[i].style = fn(nc[i].style)
	}
	return b.withContent(b.text, nc)
}

func (b Block) equal(o Block) bool {
	if b.key != o.key || b.typ != o.typ || b.depth != o.depth {
		return false
	}
	if !slices.Equal(b.text, o.text) || len(b.chars) != len(o.chars) {
		return false
	}
	for i := range b.chars {
		if b.chars[i].entity != o.chars[i].entity || !b.chars[i].style.Equal(o.chars[i].style) {
			return false
		}
	}
	return bytes.Equal(normalizeData(b.data), normalizeData(o.data))
}

func normalizeData(d json.RawMessage) json.RawMessage {
	if len(d) == 0 {
		return json.RawMessage("{}")
	}
	return d
}

func fillMeta(n int, m charMeta) []charMeta {
	out := make([]charMeta, n)
	for i := range out {
		out[i] = m
	}
	return out
}
