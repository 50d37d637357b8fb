package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/easygit/easygit/internal/git"
)

// fakeService is an in-memory Service backing the controller tests. Status
// lines use the porcelain format, so mutations rewrite them the way git would.
type fakeService struct {
	branches []git.BranchSummary
	current  string
	commits  []git.Commit
	status   []string
	stashes  []git.StashEntry

	branchErr error
	statusErr error
}

var _ git.Service = (*fakeService)(nil)

func (f *fakeService) RepoRoot() string { return "/work/demo" }
func (f *fakeService) GitDir() string   { return "/work/demo/.git" }
func (f *fakeService) RepoName() string { return "demo" }

func (f *fakeService) CurrentBranch() (string, error) { return f.current, nil }

func (f *fakeService) BranchSummaries() ([]git.BranchSummary, error) {
	if f.branchErr != nil {
		return nil, f.branchErr
	}
	out := make([]git.BranchSummary, len(f.branches))
	copy(out, f.branches)
	return out, nil
}

func (f *fakeService) CommitLog(int) ([]git.Commit, error) {
	out := make([]git.Commit, len(f.commits))
	copy(out, f.commits)
	return out, nil
}

func (f *fakeService) StatusReport() ([]string, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	out := make([]string, len(f.status))
	copy(out, f.status)
	return out, nil
}

func (f *fakeService) StashList() ([]git.StashEntry, error) { return f.stashes, nil }

func (f *fakeService) Diff(bool, string) (string, error) { return "", nil }

func (f *fakeService) Checkout(name string) error {
	for _, b := range f.branches {
		if !b.IsRemote && b.Name == name {
			f.current = name
			return nil
		}
	}
	return fmt.Errorf("no such branch %q", name)
}

func (f *fakeService) CheckoutRemote(remoteRef string) (string, error) {
	local := remoteRef
	if i := strings.Index(remoteRef, "/"); i >= 0 {
		local = remoteRef[i+1:]
	}
	f.branches = append(f.branches, git.BranchSummary{Name: local})
	f.current = local
	return local, nil
}

func (f *fakeService) CreateBranch(name string) error {
	if name == "" {
		return errors.New("empty branch name")
	}
	for _, b := range f.branches {
		if b.Name == name {
			return fmt.Errorf("branch %q already exists", name)
		}
	}
	f.branches = append(f.branches, git.BranchSummary{Name: name})
	f.current = name
	return nil
}

func (f *fakeService) DeleteBranch(name string) error {
	if name == f.current {
		return fmt.Errorf("branch %q is checked out", name)
	}
	for i, b := range f.branches {
		if !b.IsRemote && b.Name == name {
			f.branches = append(f.branches[:i], f.branches[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such branch %q", name)
}

func (f *fakeService) Stage(path string) error {
	for i, line := range f.status {
		if len(line) > 3 && line[3:] == path {
			switch {
			case strings.HasPrefix(line, "?? "):
				f.status[i] = "A  " + path
			case line[0] == ' ':
				f.status[i] = string(line[1]) + "  " + path
			}
			return nil
		}
	}
	return fmt.Errorf("nothing to stage at %q", path)
}

func (f *fakeService) Unstage(path string) error {
	for i, line := range f.status {
		if len(line) > 3 && line[3:] == path && line[0] != ' ' && line[0] != '?' {
			f.status[i] = " " + string(line[0]) + " " + path
			return nil
		}
	}
	return fmt.Errorf("nothing to unstage at %q", path)
}

func (f *fakeService) Discard(path string, _ bool) error {
	for i, line := range f.status {
		if len(line) > 3 && line[3:] == path {
			f.status = append(f.status[:i], f.status[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("nothing to discard at %q", path)
}

func (f *fakeService) Commit(message string) error {
	if message == "" {
		return errors.New("empty commit message")
	}
	kept := f.status[:0]
	for _, line := range f.status {
		if line[0] == ' ' || line[0] == '?' {
			kept = append(kept, line)
		}
	}
	f.status = kept
	f.commits = append([]git.Commit{{ID: fmt.Sprintf("c%04d", len(f.commits)), Summary: message}}, f.commits...)
	return nil
}

func (f *fakeService) FetchRemotes() error { return nil }
func (f *fakeService) PullCurrent() error  { return nil }
func (f *fakeService) PushCurrent() error  { return nil }
