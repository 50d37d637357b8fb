package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/easygit/easygit/internal/ui"
)

// Region identifies one focusable panel of the dashboard.
type Region int

// Dashboard panels. Commits, Details, Branches and Stashes live on the main
// screen; Changes, ChangeViewer and CommitMessage live inside the commit popup.
const (
	RegionCommits Region = iota
	RegionDetails
	RegionBranches
	RegionStashes
	RegionChanges
	RegionChangeViewer
	RegionCommitMessage
)

// Label returns the panel title.
func (r Region) Label() string {
	switch r {
	case RegionCommits:
		return "Commits"
	case RegionDetails:
		return "Details"
	case RegionBranches:
		return "Branches"
	case RegionStashes:
		return "Stashes"
	case RegionChanges:
		return "Changes"
	case RegionChangeViewer:
		return "Diff"
	case RegionCommitMessage:
		return "Commit Message"
	default:
		return ""
	}
}

// Hints returns the footer instruction text shown while the region has focus.
func (r Region) Hints() string {
	switch r {
	case RegionCommits:
		return "↑/↓ navigate · c commits · b branches · s stashes · l commit popup · q quit"
	case RegionDetails:
		return "↑/↓ navigate commits · q quit"
	case RegionBranches:
		return "↑/↓ navigate · enter checkout · a new · x delete · u update · p push · q quit"
	case RegionStashes:
		return "↑/↓ navigate · q quit"
	case RegionChanges:
		return "↑/↓ navigate · enter stage/unstage · x discard · v diff · m message · q close"
	case RegionChangeViewer:
		return "↑/↓ scroll · c changes · m message · q close"
	case RegionCommitMessage:
		return "enter edit message · c changes · v diff · q close"
	default:
		return ""
	}
}

// FocusColor returns the border colour used while the region has focus.
func (r Region) FocusColor(t ui.Theme) lipgloss.Color {
	switch r {
	case RegionBranches:
		return t.BranchLocal
	case RegionCommits, RegionDetails:
		return t.Primary
	case RegionStashes:
		return t.Stash
	default:
		return t.BorderFocused
	}
}

// ── Focus state ──────────────────────────────────────────────────────

// focusMode is the tagged union of focus states. Exactly one is active at a
// time, which makes an overlay-inside-overlay unrepresentable.
type focusMode interface{ isFocusMode() }

// modeNormal is the main screen with one panel focused.
type modeNormal struct{ region Region }

// modePopup is the commit popup with one of its sub-panels focused.
type modePopup struct{ sub Region }

// modeInput is a modal text-input overlay. ret is restored when the overlay
// closes, whether by submit or cancel.
type modeInput struct {
	kind inputKind
	ret  focusMode
}

func (modeNormal) isFocusMode() {}
func (modePopup) isFocusMode()  {}
func (modeInput) isFocusMode()  {}

// inputKind distinguishes the two text overlays.
type inputKind int

const (
	inputBranchName inputKind = iota
	inputCommitMessage
)

func (k inputKind) title() string {
	if k == inputBranchName {
		return "New branch"
	}
	return "Commit message"
}
