package git

import (
	"errors"
	"testing"
	"time"
)

// countingService records how many times each query hits the backend.
type countingService struct {
	branchCalls int
	statusCalls int
	headCalls   int
	stashCalls  int

	failStatus bool
}

func (s *countingService) RepoRoot() string { return "/repo" }
func (s *countingService) GitDir() string { return "/repo/.git" }
func (s *countingService) RepoName() string { return "repo" }

func (s *countingService) CurrentBranch() (string, error) {
	s.headCalls++
	return "main", nil
}

func (s *countingService) BranchSummaries() ([]BranchSummary, error) {
	s.branchCalls++
	return []BranchSummary{{Name: "main"}}, nil
}

func (s *countingService) CommitLog(int) ([]Commit, error) { return nil, nil }

func (s *countingService) StatusReport() ([]string, error) {
	s.statusCalls++
	if s.failStatus {
		return nil, errors.New("status failed")
	}
	return []string{" M a.go"}, nil
}

func (s *countingService) StashList() ([]StashEntry, error) {
	s.stashCalls++
	return nil, nil
}

func (s *countingService) Diff(bool, string) (string, error) { return "", nil }

func (s *countingService) Checkout(string) error { return nil }
func (s *countingService) CheckoutRemote(string) (string, error) { return "", nil }
func (s *countingService) CreateBranch(string) error { return nil }
func (s *countingService) DeleteBranch(string) error { return nil }
func (s *countingService) Stage(string) error { return nil }
func (s *countingService) Unstage(string) error { return nil }
func (s *countingService) Discard(string, bool) error { return nil }
func (s *countingService) Commit(string) error { return nil }
func (s *countingService) FetchRemotes() error { return nil }
func (s *countingService) PullCurrent() error { return nil }
func (s *countingService) PushCurrent() error { return nil }

func TestCachedServiceDeduplicatesReads(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := svc.BranchSummaries(); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.StatusReport(); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.CurrentBranch(); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.StashList(); err != nil {
			t.Fatal(err)
		}
	}

	if inner.branchCalls != 1 || inner.statusCalls != 1 || inner.headCalls != 1 || inner.stashCalls != 1 {
		t.Fatalf("backend hit more than once: branches=%d status=%d head=%d stashes=%d",
			inner.branchCalls, inner.statusCalls, inner.headCalls, inner.stashCalls)
	}
}

func TestCachedServiceCachesErrors(t *testing.T) {
	inner := &countingService{failStatus: true}
	svc := NewCachedService(inner, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := svc.StatusReport(); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.statusCalls != 1 {
		t.Fatalf("error not cached: %d calls", inner.statusCalls)
	}
}

func TestCachedServiceWritesInvalidate(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	if _, err := svc.StatusReport(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Stage("a.go"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.StatusReport(); err != nil {
		t.Fatal(err)
	}
	if inner.statusCalls != 2 {
		t.Fatalf("stage did not invalidate status cache: %d calls", inner.statusCalls)
	}
}

func TestCachedServiceTTLExpiry(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Millisecond)

	if _, err := svc.BranchSummaries(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.BranchSummaries(); err != nil {
		t.Fatal(err)
	}
	if inner.branchCalls != 2 {
		t.Fatalf("TTL expiry not honoured: %d calls", inner.branchCalls)
	}
}
