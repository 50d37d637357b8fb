package git

// Service defines the contract for all Git operations the dashboard performs.
// The app model depends on this interface, never on exec.Command directly, so
// the whole controller is testable with an in-memory fake.
type Service interface {
	// ── Repository info ──────────────────────────────────────────────
	RepoRoot() string
	GitDir() string
	RepoName() string
	CurrentBranch() (string, error)

	// ── Queries (replaced wholesale every refresh) ───────────────────
	BranchSummaries() ([]BranchSummary, error)
	CommitLog(limit int) ([]Commit, error)
	StatusReport() ([]string, error)
	StashList() ([]StashEntry, error)
	Diff(staged bool, path string) (string, error)

	// ── Mutations ────────────────────────────────────────────────────
	Checkout(name string) error
	// CheckoutRemote checks out a remote-tracking ref as a local branch
	// and returns the local branch name.
	CheckoutRemote(remoteRef string) (string, error)
	CreateBranch(name string) error
	DeleteBranch(name string) error
	Stage(path string) error
	Unstage(path string) error
	Discard(path string, untracked bool) error
	Commit(message string) error
	FetchRemotes() error
	PullCurrent() error
	PushCurrent() error
}
