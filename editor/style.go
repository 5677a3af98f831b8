package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/trigger"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Status      lipgloss.Style

	// Blocks styles whole blocks by type; unknown types render with Text.
	Blocks map[draft.BlockType]lipgloss.Style

	// Inline styles characters carrying an inline style. Styles missing from
	// the map render unstyled.
	Inline map[draft.Style]lipgloss.Style
}

// Built-in inline styles every renderer understands.
const (
	StyleItalic        draft.Style = "ITALIC"
	StyleCode          draft.Style = "CODE"
	StyleStrikethrough draft.Style = "STRIKETHROUGH"
)

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	inline := map[draft.Style]lipgloss.Style{
		trigger.StyleBold:  lipgloss.NewStyle().Bold(true),
		StyleItalic:        lipgloss.NewStyle().Italic(true),
		StyleCode:          lipgloss.NewStyle().Background(lipgloss.Color("236")),
		StyleStrikethrough: lipgloss.NewStyle().Strikethrough(true),
	}
	for st, fx := range trigger.CustomStyleMap() {
		inline[st] = StyleFromEffect(fx)
	}

	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Blocks: map[draft.BlockType]lipgloss.Style{
			draft.BlockHeaderOne: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		},
		Inline: inline,
	}
}

// namedColors maps the color names a VisualEffect may carry to ANSI colors.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// StyleFromEffect converts a rendering descriptor to a terminal style.
// Colors are either one of the basic color names or a #rrggbb value.
func StyleFromEffect(fx trigger.VisualEffect) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c := strings.ToLower(strings.TrimSpace(fx.Color)); c != "" {
		if ansi, ok := namedColors[c]; ok {
			c = ansi
		}
		s = s.Foreground(lipgloss.Color(c))
	}
	if fx.TextDecoration == "underline" {
		s = s.Underline(true)
	}
	if fx.TextDecoration == "line-through" {
		s = s.Strikethrough(true)
	}
	if fx.FontWeight == "bold" {
		s = s.Bold(true)
	}
	return s
}

// blockStyle returns the base style for a block type.
func (s Style) blockStyle(typ draft.BlockType) lipgloss.Style {
	if bs, ok := s.Blocks[typ]; ok {
		return bs.Inherit(s.Text)
	}
	return s.Text
}

// runStyle composes the styles of every inline style in set over base.
func (s Style) runStyle(base lipgloss.Style, set draft.StyleSet) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, st := range set.Slice() {
		if is, ok := s.Inline[st]; ok {
			out = out.Inherit(is)
		}
	}
	return out.Inherit(base)
}
