package app

import (
	"testing"

	"github.com/easygit/easygit/internal/git"
)

func intPtr(i int) *int { return &i }

func TestReconcileBranchHoverFollowsCurrent(t *testing.T) {
	branches := []git.BranchSummary{
		{Name: "alpha"},
		{Name: "main"},
		{Name: "zeta"},
	}
	got := reconcileBranchHover(branches, "main", nil)
	if got == nil || *got != 1 {
		t.Fatalf("hover = %v, want 1", got)
	}

	// Same branch at a new position after a reorder.
	reordered := []git.BranchSummary{
		{Name: "main"},
		{Name: "alpha"},
		{Name: "zeta"},
	}
	got = reconcileBranchHover(reordered, "main", nil)
	if got == nil || *got != 0 {
		t.Fatalf("hover after reorder = %v, want 0", got)
	}
}

func TestReconcileBranchHoverExplicitWins(t *testing.T) {
	branches := []git.BranchSummary{
		{Name: "alpha"},
		{Name: "main"},
		{Name: "zeta"},
	}
	got := reconcileBranchHover(branches, "main", intPtr(2))
	if got == nil || *got != 2 {
		t.Fatalf("explicit hover = %v, want 2", got)
	}

	// Out-of-range explicit falls back to the current branch.
	got = reconcileBranchHover(branches, "main", intPtr(9))
	if got == nil || *got != 1 {
		t.Fatalf("out-of-range explicit hover = %v, want 1", got)
	}
}

func TestReconcileBranchHoverFallbacks(t *testing.T) {
	branches := []git.BranchSummary{{Name: "alpha"}, {Name: "beta"}}
	got := reconcileBranchHover(branches, "gone", nil)
	if got == nil || *got != 0 {
		t.Fatalf("hover for missing current = %v, want 0", got)
	}
	if got := reconcileBranchHover(nil, "main", nil); got != nil {
		t.Fatalf("hover for empty list = %v, want nil", got)
	}
}

func TestReconcileBranchHoverIgnoresRemoteWithSameName(t *testing.T) {
	branches := []git.BranchSummary{
		{Name: "main", IsRemote: true, RemoteRef: "main"},
		{Name: "main"},
	}
	got := reconcileBranchHover(branches, "main", nil)
	if got == nil || *got != 1 {
		t.Fatalf("hover = %v, want 1 (local branch)", got)
	}
}

func TestReconcileBranchSelected(t *testing.T) {
	branches := []git.BranchSummary{{Name: "alpha"}, {Name: "beta"}}
	if got := reconcileBranchSelected(branches, "beta"); got != "beta" {
		t.Fatalf("selected = %q, want beta", got)
	}
	if got := reconcileBranchSelected(branches, "gone"); got != "" {
		t.Fatalf("selected = %q, want cleared", got)
	}
	if got := reconcileBranchSelected(branches, ""); got != "" {
		t.Fatalf("selected = %q, want empty", got)
	}
}

func TestReconcileCommitHover(t *testing.T) {
	commits := []git.Commit{{ID: "a1b2"}, {ID: "c3d4"}, {ID: "e5f6"}}

	got := reconcileCommitHover(commits, "c3d4")
	if got == nil || *got != 1 {
		t.Fatalf("hover = %v, want 1", got)
	}

	// The id moved after new commits landed on top.
	grown := append([]git.Commit{{ID: "ffff"}}, commits...)
	got = reconcileCommitHover(grown, "c3d4")
	if got == nil || *got != 2 {
		t.Fatalf("hover after growth = %v, want 2", got)
	}

	got = reconcileCommitHover(commits, "gone")
	if got == nil || *got != 0 {
		t.Fatalf("hover for missing id = %v, want 0", got)
	}
	if got := reconcileCommitHover(nil, "c3d4"); got != nil {
		t.Fatalf("hover for empty list = %v, want nil", got)
	}
}

func TestReconcileChangeHover(t *testing.T) {
	changes := []git.FileChange{
		{Path: "a.go", Staged: true},
		{Path: "b.go"},
		{Path: "c.go"},
	}

	got := reconcileChangeHover(changes, "b.go", nil)
	if got == nil || *got != 1 {
		t.Fatalf("hover for preferred path = %v, want 1", got)
	}

	// No preferred path: clamp the previous index.
	got = reconcileChangeHover(changes, "", intPtr(7))
	if got == nil || *got != 2 {
		t.Fatalf("clamped hover = %v, want 2", got)
	}
	got = reconcileChangeHover(changes, "", intPtr(1))
	if got == nil || *got != 1 {
		t.Fatalf("in-range hover = %v, want 1", got)
	}
	got = reconcileChangeHover(changes, "gone.go", intPtr(1))
	if got == nil || *got != 1 {
		t.Fatalf("missing preferred path should clamp previous = %v, want 1", got)
	}
	if got := reconcileChangeHover(nil, "a.go", intPtr(0)); got != nil {
		t.Fatalf("hover for empty list = %v, want nil", got)
	}
}
