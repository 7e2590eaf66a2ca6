// Package tui is the terminal presentation shell: a display and the fixed
// calculator keypad, drawn with lipgloss and driven by bubbletea. Every key
// press becomes exactly one engine token; the display shows the engine's
// output verbatim.
package tui
