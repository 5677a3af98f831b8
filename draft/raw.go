package draft

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf16"
)

// ErrInvalidRaw marks a raw payload that cannot be turned into a Document.
var ErrInvalidRaw = errors.New("invalid raw document")

// RawDocument is the persisted form of a Document.
type RawDocument struct {
	Blocks    []RawBlock                 `json:"blocks"`
	EntityMap map[string]json.RawMessage `json:"entityMap"`
}

type RawBlock struct {
	Key               string           `json:"key"`
	Text              string           `json:"text"`
	Type              string           `json:"type"`
	Depth             int              `json:"depth"`
	InlineStyleRanges []RawStyleRange  `json:"inlineStyleRanges"`
	EntityRanges      []RawEntityRange `json:"entityRanges"`
	Data              json.RawMessage  `json:"data"`
}

// RawStyleRange covers [Offset, Offset+Length) with Style. Offsets in the raw
// form count UTF-16 code units, so a character outside the Basic Multilingual
// Plane takes two.
type RawStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// RawEntityRange links [Offset, Offset+Length) UTF-16 code units to entity
// Key.
type RawEntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// ToRaw converts d into its persisted form.
func ToRaw(d Document) RawDocument {
	raw := RawDocument{
		Blocks:    make([]RawBlock, 0, len(d.blocks)),
		EntityMap: make(map[string]json.RawMessage, len(d.entities)),
	}
	for k, v := range d.entities {
		raw.EntityMap[k] = slices.Clone(v)
	}
	for _, b := range d.blocks {
		raw.Blocks = append(raw.Blocks, RawBlock{
			Key:               b.key,
			Text:              b.Text(),
			Type:              string(b.typ),
			Depth:             b.depth,
			InlineStyleRanges: encodeStyleRanges(b),
			EntityRanges:      encodeEntityRanges(b),
			Data:              slices.Clone(normalizeData(b.data)),
		})
	}
	return raw
}

// encodeStyleRanges emits one range per maximal run of each style. Styles are
// ordered by first appearance, runs by offset.
func encodeStyleRanges(b Block) []RawStyleRange {
	out := []RawStyleRange{}
	units := unitOffsets(b.text)
	var order []Style
	seen := map[Style]bool{}
	for _, c := range b.chars {
		for _, st := range c.style.styles {
			if !seen[st] {
				seen[st] = true
				order = append(order, st)
			}
		}
	}
	for _, st := range order {
		start := -1
		for i := 0; i <= len(b.chars); i++ {
			has := i < len(b.chars) && b.chars[i].style.Has(st)
			switch {
			case has && start < 0:
				start = i
			case !has && start >= 0:
				out = append(out, RawStyleRange{Offset: units[start], Length: units[i] - units[start], Style: string(st)})
				start = -1
			}
		}
	}
	return out
}

func encodeEntityRanges(b Block) []RawEntityRange {
	out := []RawEntityRange{}
	units := unitOffsets(b.text)
	start := 0
	for i := 1; i <= len(b.chars); i++ {
		if i < len(b.chars) && b.chars[i].entity == b.chars[start].entity {
			continue
		}
		if k := b.chars[start].entity; k != "" {
			n, err := strconv.Atoi(k)
			if err == nil {
				out = append(out, RawEntityRange{Offset: units[start], Length: units[i] - units[start], Key: n})
			}
		}
		start = i
	}
	return out
}

// FromRaw validates raw and builds the Document it describes. The caret of
// the result sits at the start of the first block.
func FromRaw(raw RawDocument) (Document, error) {
	if len(raw.Blocks) == 0 {
		return Document{}, fmt.Errorf("%w: no blocks", ErrInvalidRaw)
	}

	entities := make(map[string]json.RawMessage, len(raw.EntityMap))
	for k, v := range raw.EntityMap {
		if _, err := strconv.Atoi(k); err != nil {
			return Document{}, fmt.Errorf("%w: entity key %q is not numeric", ErrInvalidRaw, k)
		}
		compact, err := compactJSON(v)
		if err != nil {
			return Document{}, fmt.Errorf("%w: entity %q: %v", ErrInvalidRaw, k, err)
		}
		entities[k] = compact
	}

	seen := make(map[string]bool, len(raw.Blocks))
	blocks := make([]Block, 0, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		if rb.Key == "" {
			return Document{}, fmt.Errorf("%w: block %d has no key", ErrInvalidRaw, i)
		}
		if seen[rb.Key] {
			return Document{}, fmt.Errorf("%w: duplicate block key %q", ErrInvalidRaw, rb.Key)
		}
		seen[rb.Key] = true

		b, err := decodeBlock(rb, entities)
		if err != nil {
			return Document{}, fmt.Errorf("%w: block %q: %v", ErrInvalidRaw, rb.Key, err)
		}
		blocks = append(blocks, b)
	}

	d := Document{entities: entities}.withBlocks(blocks)
	caret := Collapsed(blocks[0].key, 0)
	return d.withSelections(caret, caret), nil
}

func decodeBlock(rb RawBlock, entities map[string]json.RawMessage) (Block, error) {
	if rb.Depth < 0 {
		return Block{}, fmt.Errorf("negative depth %d", rb.Depth)
	}
	b := NewBlock(rb.Key, BlockType(rb.Type), rb.Text, StyleSet{})
	b.depth = rb.Depth

	if len(rb.Data) > 0 && !bytes.Equal(bytes.TrimSpace(rb.Data), []byte("null")) {
		data, err := compactJSON(rb.Data)
		if err != nil {
			return Block{}, fmt.Errorf("data: %v", err)
		}
		if !bytes.Equal(data, []byte("{}")) {
			b.data = data
		}
	}

	units := unitOffsets(b.text)
	for _, r := range rb.InlineStyleRanges {
		start, end, err := runeRange(units, r.Offset, r.Length)
		if err != nil {
			return Block{}, fmt.Errorf("style %q: %v", r.Style, err)
		}
		if r.Style == "" {
			return Block{}, errors.New("empty style name")
		}
		st := Style(r.Style)
		b = b.mapStyles(start, end, func(set StyleSet) StyleSet { return set.Add(st) })
	}

	if len(rb.EntityRanges) > 0 {
		chars := slices.Clone(b.chars)
		for _, r := range rb.EntityRanges {
			start, end, err := runeRange(units, r.Offset, r.Length)
			if err != nil {
				return Block{}, fmt.Errorf("entity %d: %v", r.Key, err)
			}
			k := strconv.Itoa(r.Key)
			if _, ok := entities[k]; !ok {
				return Block{}, fmt.Errorf("entity %d missing from entity map", r.Key)
			}
			for i := start; i < end; i++ {
				chars[i].entity = k
			}
		}
		b = b.withContent(b.text, chars)
	}
	return b, nil
}

// unitOffsets returns, for each rune index i of text (and len(text)), the
// number of UTF-16 code units before it.
func unitOffsets(text []rune) []int {
	out := make([]int, len(text)+1)
	for i, r := range text {
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		out[i+1] = out[i] + n
	}
	return out
}

// runeRange converts a UTF-16 [off, off+length) range into rune offsets. Both
// ends must fall on character boundaries.
func runeRange(units []int, off, length int) (int, int, error) {
	total := units[len(units)-1]
	if off < 0 || length < 0 || off+length > total {
		return 0, 0, fmt.Errorf("range [%d,%d) outside text of length %d", off, off+length, total)
	}
	start, ok := runeIndex(units, off)
	if !ok {
		return 0, 0, fmt.Errorf("offset %d splits a surrogate pair", off)
	}
	end, ok := runeIndex(units, off+length)
	if !ok {
		return 0, 0, fmt.Errorf("offset %d splits a surrogate pair", off+length)
	}
	return start, end, nil
}

func runeIndex(units []int, unit int) (int, bool) {
	return slices.BinarySearch(units, unit)
}

func compactJSON(v json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal encodes d as raw JSON.
func Marshal(d Document) ([]byte, error) {
	data, err := json.Marshal(ToRaw(d))
	if err != nil {
		return nil, fmt.Errorf("encode raw document: %w", err)
	}
	return data, nil
}

// MarshalIndent is Marshal with indentation, for human-facing output.
func MarshalIndent(d Document) ([]byte, error) {
	data, err := json.MarshalIndent(ToRaw(d), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode raw document: %w", err)
	}
	return data, nil
}

// Unmarshal decodes raw JSON into a Document. Malformed JSON and payloads
// that fail validation both wrap ErrInvalidRaw.
func Unmarshal(data []byte) (Document, error) {
	var raw RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidRaw, err)
	}
	return FromRaw(raw)
}
