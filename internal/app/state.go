package app

import "github.com/easygit/easygit/internal/git"

// BranchInfo is the branches panel view-model. It is replaced wholesale on
// every refresh; only the reconciler carries hover and selection across.
type BranchInfo struct {
	Branches []git.BranchSummary // sorted by name
	Current  string              // checked-out branch, "" when detached
	Status   string              // fetch error, rendered in place of the list
	Hovered  *int
	Selected string // sticky choice, cleared when the branch disappears
}

// HoveredBranch returns the branch under the hover, if any.
func (b BranchInfo) HoveredBranch() (git.BranchSummary, bool) {
	if b.Hovered == nil || *b.Hovered >= len(b.Branches) {
		return git.BranchSummary{}, false
	}
	return b.Branches[*b.Hovered], true
}

// CommitsState is the commit log panel view-model.
type CommitsState struct {
	Commits []git.Commit // reverse-chronological, all refs
	Status  string       // fetch error
	Hovered *int
}

// HoveredCommit returns the commit under the hover, if any.
func (c CommitsState) HoveredCommit() (git.Commit, bool) {
	if c.Hovered == nil || *c.Hovered >= len(c.Commits) {
		return git.Commit{}, false
	}
	return c.Commits[*c.Hovered], true
}

// RepoStatus is the working-tree changes view-model.
type RepoStatus struct {
	Changes  []git.FileChange // sorted by path
	Error    string
	RepoName string
	Hovered  *int
}

// IsClean reports whether the working tree has no changes and no fetch error.
func (s RepoStatus) IsClean() bool {
	return s.Error == "" && len(s.Changes) == 0
}

// HoveredChange returns the change record under the hover, if any.
func (s RepoStatus) HoveredChange() (git.FileChange, bool) {
	if s.Hovered == nil || *s.Hovered >= len(s.Changes) {
		return git.FileChange{}, false
	}
	return s.Changes[*s.Hovered], true
}

// Counts returns the number of staged, unstaged and untracked records.
func (s RepoStatus) Counts() (staged, unstaged, untracked int) {
	for _, c := range s.Changes {
		switch {
		case c.Change == git.ChangeUntracked:
			untracked++
		case c.Staged:
			staged++
		default:
			unstaged++
		}
	}
	return staged, unstaged, untracked
}
