package app

import "github.com/easygit/easygit/internal/git"

// Reconciliation carries hover and selection across a wholesale collection
// replacement by matching stable identities. Branches and commits/changes use
// deliberately different policies: branches honour an explicitly supplied
// hover index (a caller that just acted knows the position it wants) and
// otherwise snap to the checked-out branch, while commits match on id and
// changes match on path or clamp. Callers must use the matching variant.

// reconcileBranchHover computes the new branch hover. explicit wins when
// supplied and still in range; otherwise the checked-out branch; otherwise
// index 0; nil when the list is empty.
func reconcileBranchHover(branches []git.BranchSummary, current string, explicit *int) *int {
	if len(branches) == 0 {
		return nil
	}
	if explicit != nil && *explicit >= 0 && *explicit < len(branches) {
		i := *explicit
		return &i
	}
	if current != "" {
		for i, b := range branches {
			if !b.IsRemote && b.Name == current {
				idx := i
				return &idx
			}
		}
	}
	zero := 0
	return &zero
}

// reconcileBranchSelected keeps the sticky selection only while the branch
// still exists.
func reconcileBranchSelected(branches []git.BranchSummary, selected string) string {
	if selected == "" {
		return ""
	}
	for _, b := range branches {
		if b.Name == selected {
			return selected
		}
	}
	return ""
}

// reconcileCommitHover computes the new commit hover: the entry whose id
// matches the previously hovered id, otherwise 0, nil when empty.
func reconcileCommitHover(commits []git.Commit, prevID string) *int {
	if len(commits) == 0 {
		return nil
	}
	if prevID != "" {
		for i, c := range commits {
			if c.ID == prevID {
				idx := i
				return &idx
			}
		}
	}
	zero := 0
	return &zero
}

// reconcileChangeHover computes the new change hover: the record whose path
// matches preferred, otherwise the previous index clamped into range, nil
// when empty.
func reconcileChangeHover(changes []git.FileChange, preferred string, prev *int) *int {
	if len(changes) == 0 {
		return nil
	}
	if preferred != "" {
		for i, c := range changes {
			if c.Path == preferred {
				idx := i
				return &idx
			}
		}
	}
	idx := 0
	if prev != nil {
		idx = *prev
		if idx >= len(changes) {
			idx = len(changes) - 1
		}
		if idx < 0 {
			idx = 0
		}
	}
	return &idx
}
