package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Boundaries returns the rune offsets at which clusters start, followed by
// the total rune count. An empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the rune offset of the cluster boundary strictly before off,
// or 0.
func Prev(text string, off int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the rune offset of the cluster boundary strictly after off,
// or the rune length of text.
func Next(text string, off int) int {
	bounds := Boundaries(text)
	for _, b := range bounds {
		if b > off {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsLowerASCII reports whether cluster is a single grapheme whose base
// character is one of a-z. Combining marks after it are allowed.
func IsLowerASCII(cluster string) bool {
	if Count(cluster) != 1 {
		return false
	}
	return cluster[0] >= 'a' && cluster[0] <= 'z'
}
