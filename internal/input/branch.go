package input

import "unicode/utf8"

// BranchEditor edits a branch name. Git ref names cannot contain spaces, so
// space and '-' are both folded into a single '-', and the fold is suppressed
// entirely when the rune adjacent to the cursor on either side is already a
// dash. All other runes insert as-is.
type BranchEditor struct {
	LineEditor
}

// InsertRune applies the dash-folding policy before delegating to the
// underlying editor.
func (e *BranchEditor) InsertRune(r rune) {
	if r == ' ' || r == '-' {
		if e.adjacentDash() {
			return
		}
		e.LineEditor.InsertRune('-')
		return
	}
	e.LineEditor.InsertRune(r)
}

// adjacentDash reports whether the rune immediately before or after the
// cursor is '-'.
func (e *BranchEditor) adjacentDash() bool {
	if e.cursor > 0 {
		if r, _ := utf8.DecodeLastRuneInString(e.value[:e.cursor]); r == '-' {
			return true
		}
	}
	if e.cursor < len(e.value) {
		if r, _ := utf8.DecodeRuneInString(e.value[e.cursor:]); r == '-' {
			return true
		}
	}
	return false
}
