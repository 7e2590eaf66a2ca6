// Package engine implements the calculator core: the display buffer state
// machine driven by keypad tokens, and the arithmetic evaluator behind "=".
//
// The engine holds no I/O and no locks. Presentation shells forward one Token
// per key press and render whatever string comes back.
package engine
