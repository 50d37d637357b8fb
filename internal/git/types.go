package git

import "time"

// ChangeType classifies a single working-tree or index change.
type ChangeType int

// Change types, mapped from porcelain status letters.
const (
	ChangeUnknown ChangeType = iota
	ChangeAdded
	ChangeModified
	ChangeDeleted
	ChangeRenamed
	ChangeCopied
	ChangeTypeChange
	ChangeUntracked
	ChangeUnmerged
)

// Label returns a human-readable description of the change type.
func (c ChangeType) Label() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	case ChangeRenamed:
		return "renamed"
	case ChangeCopied:
		return "copied"
	case ChangeTypeChange:
		return "type-change"
	case ChangeUntracked:
		return "untracked"
	case ChangeUnmerged:
		return "unmerged"
	default:
		return "other"
	}
}

// FileChange is one decoded change record. A partially staged file yields two
// records for the same path, one staged and one unstaged.
type FileChange struct {
	Path   string // post-rename path for renames/copies
	Change ChangeType
	Staged bool
}

// BranchSummary describes one local or remote-tracking branch.
// Ahead/Behind are relative to the branch's upstream and are zero when the
// branch has no upstream. RemoteRef is only set for remote branches and names
// the full tracking ref (e.g. "origin/feature").
type BranchSummary struct {
	Name      string
	Ahead     int
	Behind    int
	IsRemote  bool
	RemoteRef string
}

// Commit is one entry of the commit log.
type Commit struct {
	ID       string // short hash, unique per snapshot
	Summary  string
	Author   string
	When     time.Time
	Branches []string // branch tips pointing at this commit, empty if none
}

// StashEntry is one entry of `git stash list`.
type StashEntry struct {
	Index   int
	Message string
	Branch  string
}
