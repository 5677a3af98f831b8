// Package draft implements the immutable rich-text document model.
//
// A Document is an ordered list of Blocks. Each Block holds its text, a block
// type, and one StyleSet per character. Every edit returns a new Document and
// leaves the previous one valid, so an EditorState can keep old documents on
// its undo stack without copying.
//
// Offsets count runes within a single block. Selections are anchor/focus
// pairs of (block key, offset).
package draft
