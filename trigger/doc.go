// Package trigger turns markdown-like prefixes typed on an empty line into
// formatting.
//
// The host calls Evaluate before committing each typed character. A block
// whose whole text is "#", "*", "**" or "***" followed by a space becomes a
// heading, bold, red, or underlined line respectively; the trigger text is
// consumed. A letter a-z typed into an empty block is capitalized.
//
// Trigger progress is read from the block text on every call, so nothing is
// stored between keystrokes.
package trigger
