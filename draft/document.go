package draft

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Document is an immutable ordered list of blocks plus an entity map.
//
// SelectionBefore and SelectionAfter record the selection around the edit
// that produced the document; EditorState uses them for undo.
type Document struct {
	blocks   []Block
	index    map[string]int
	entities map[string]json.RawMessage

	selBefore Selection
	selAfter  Selection
}

// NewDocument builds a document from blocks. An empty list yields a single
// empty unstyled block. Blocks with empty keys get fresh ones; duplicate
// keys panic.
func NewDocument(blocks ...Block) Document {
	if len(blocks) == 0 {
		blocks = []Block{NewBlock("", BlockUnstyled, "", StyleSet{})}
	}
	d := Document{}.withBlocks(slices.Clone(blocks))
	for i := range d.blocks {
		if d.blocks[i].key == "" {
			d.blocks[i].key = newKey(d.index)
			d.index[d.blocks[i].key] = i
		}
	}
	first := d.blocks[0].key
	d.selBefore = Collapsed(first, 0)
	d.selAfter = d.selBefore
	return d
}

// NewDocumentFromText splits text on newlines into unstyled blocks.
func NewDocumentFromText(text string) Document {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = NewBlock("", BlockUnstyled, line, StyleSet{})
	}
	return NewDocument(blocks...)
}

func (d Document) withBlocks(blocks []Block) Document {
	d.blocks = blocks
	d.index = make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.key == "" {
			continue
		}
		if _, dup := d.index[b.key]; dup {
			panic(fmt.Sprintf("draft: duplicate block key %q", b.key))
		}
		d.index[b.key] = i
	}
	return d
}

func (d Document) withSelections(before, after Selection) Document {
	d.selBefore = before
	d.selAfter = after
	return d
}

func (d Document) withSelectionBefore(sel Selection) Document {
	d.selBefore = sel
	return d
}

// BlockCount returns the number of blocks.
func (d Document) BlockCount() int { return len(d.blocks) }

// Blocks returns the blocks in document order.
func (d Document) Blocks() []Block { return slices.Clone(d.blocks) }

// BlockAt returns the i-th block.
func (d Document) BlockAt(i int) Block { return d.blocks[i] }

// Block returns the block with key.
func (d Document) Block(key string) (Block, bool) {
	i, ok := d.index[key]
	if !ok {
		return Block{}, false
	}
	return d.blocks[i], true
}

// IndexOf returns the position of the block with key, or -1.
func (d Document) IndexOf(key string) int {
	i, ok := d.index[key]
	if !ok {
		return -1
	}
	return i
}

func (d Document) mustIndex(key string) int {
	i, ok := d.index[key]
	if !ok {
		panic(fmt.Sprintf("draft: selection references unknown block %q", key))
	}
	return i
}

// BlockBefore returns the block preceding key.
func (d Document) BlockBefore(key string) (Block, bool) {
	i := d.mustIndex(key)
	if i == 0 {
		return Block{}, false
	}
	return d.blocks[i-1], true
}

// BlockAfter returns the block following key.
func (d Document) BlockAfter(key string) (Block, bool) {
	i := d.mustIndex(key)
	if i+1 >= len(d.blocks) {
		return Block{}, false
	}
	return d.blocks[i+1], true
}

// FirstBlock returns the first block.
func (d Document) FirstBlock() Block { return d.blocks[0] }

// LastBlock returns the last block.
func (d Document) LastBlock() Block { return d.blocks[len(d.blocks)-1] }

// PlainText joins block texts with newlines.
func (d Document) PlainText() string {
	parts := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		parts[i] = b.Text()
	}
	return strings.Join(parts, "\n")
}

// Entity returns the raw entity stored under key.
func (d Document) Entity(key string) (json.RawMessage, bool) {
	e, ok := d.entities[key]
	return slices.Clone(e), ok
}

// EntityKeys returns the entity map keys in sorted order.
func (d Document) EntityKeys() []string {
	return slices.Sorted(maps.Keys(d.entities))
}

func (d Document) SelectionBefore() Selection { return d.selBefore }

func (d Document) SelectionAfter() Selection { return d.selAfter }

// ComparePos orders two positions in document order.
func (d Document) ComparePos(a, b Pos) int {
	ai, bi := d.mustIndex(a.Key), d.mustIndex(b.Key)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

// Equal reports structural equality of blocks and entities. Selections are
// not compared.
func (d Document) Equal(o Document) bool {
	if len(d.blocks) != len(o.blocks) || len(d.entities) != len(o.entities) {
		return false
	}
	for i := range d.blocks {
		if !d.blocks[i].equal(o.blocks[i]) {
			return false
		}
	}
	for k, v := range d.entities {
		ov, ok := o.entities[k]
		if !ok || string(v) != string(ov) {
			return false
		}
	}
	return true
}
