// Package editor provides a Bubble Tea rich-text editor component backed by
// the draft package.
//
// The package owns input handling, viewport behavior and block rendering.
// Typed characters are offered to the trigger package first, so markdown-like
// prefixes such as "# " or "** " turn into formatting; anything it does not
// consume is inserted with the current inline style. Hosts integrate through
// change events and a Saver.
package editor
