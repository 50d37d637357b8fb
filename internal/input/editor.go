// Package input implements the single-line text editors used by the
// branch-name and commit-message overlays. The editors keep a byte cursor
// into a UTF-8 string; every operation lands the cursor on a codepoint
// boundary, and out-of-bounds operations are no-ops.
//
// bubbles/textinput is deliberately not used here: it owns its own cursor and
// offers no hook for the branch-name insertion policy (space→dash folding
// with adjacent-dash suppression), and the overlay rendering needs the byte
// cursor directly.
package input

import "unicode/utf8"

// LineEditor is a single-line UTF-8 text buffer with a byte cursor.
type LineEditor struct {
	value  string
	cursor int // byte offset, always on a codepoint boundary
	errMsg string
}

// Value returns the current buffer contents.
func (e *LineEditor) Value() string { return e.value }

// Cursor returns the cursor's byte offset into the value.
func (e *LineEditor) Cursor() int { return e.cursor }

// Err returns the current validation error message, if any.
func (e *LineEditor) Err() string { return e.errMsg }

// SetErr records a validation error to render inline. It is cleared by the
// next edit.
func (e *LineEditor) SetErr(msg string) { e.errMsg = msg }

// Reset clears the buffer, cursor and error.
func (e *LineEditor) Reset() {
	e.value = ""
	e.cursor = 0
	e.errMsg = ""
}

// InsertRune inserts r at the cursor and advances past it.
func (e *LineEditor) InsertRune(r rune) {
	e.value = e.value[:e.cursor] + string(r) + e.value[e.cursor:]
	e.cursor += utf8.RuneLen(r)
	e.errMsg = ""
}

// DeleteBack removes the rune ending at the cursor.
func (e *LineEditor) DeleteBack() {
	if e.cursor == 0 {
		return
	}
	r, size := utf8.DecodeLastRuneInString(e.value[:e.cursor])
	if r == utf8.RuneError && size == 0 {
		return
	}
	start := e.cursor - size
	e.value = e.value[:start] + e.value[e.cursor:]
	e.cursor = start
	e.errMsg = ""
}

// DeleteForward removes the rune starting at the cursor.
func (e *LineEditor) DeleteForward() {
	if e.cursor >= len(e.value) {
		return
	}
	_, size := utf8.DecodeRuneInString(e.value[e.cursor:])
	e.value = e.value[:e.cursor] + e.value[e.cursor+size:]
	e.errMsg = ""
}

// MoveLeft steps the cursor back by one rune.
func (e *LineEditor) MoveLeft() {
	if e.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.value[:e.cursor])
	e.cursor -= size
}

// MoveRight steps the cursor forward by one rune.
func (e *LineEditor) MoveRight() {
	if e.cursor >= len(e.value) {
		return
	}
	_, size := utf8.DecodeRuneInString(e.value[e.cursor:])
	e.cursor += size
}

// Home moves the cursor to the start of the buffer.
func (e *LineEditor) Home() { e.cursor = 0 }

// End moves the cursor past the last rune.
func (e *LineEditor) End() { e.cursor = len(e.value) }
