package git

import (
	"sync"
	"time"
)

// CachedService wraps a Service implementation with a TTL-based cache for the
// read operations. Write operations invalidate the cache so the next read is
// fresh.
//
// The dashboard re-fetches branches, commits and status every refresh tick,
// and a keystroke-triggered refresh can land in the same second as the timer
// one. With a TTL shorter than the refresh interval each query hits git at
// most once per cycle.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	val    interface{}
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries. Called after any write operation.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val interface{}, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val interface{}, err error) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// invalidateAndReturn is a helper for write methods.
func (c *CachedService) invalidateAndReturn(err error) error {
	if err == nil {
		c.Invalidate()
	}
	return err
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// GitDir delegates to the inner service.
func (c *CachedService) GitDir() string { return c.inner.GitDir() }

// RepoName delegates to the inner service.
func (c *CachedService) RepoName() string { return c.inner.RepoName() }

// CurrentBranch returns the checked-out branch (cached).
func (c *CachedService) CurrentBranch() (string, error) {
	if v, ok, err := c.get("head"); ok {
		return v.(string), err
	}
	v, err := c.inner.CurrentBranch()
	c.set("head", v, err)
	return v, err
}

// ── Queries (cached) ────────────────────────────────────────────────────────

// BranchSummaries returns all branches (cached).
func (c *CachedService) BranchSummaries() ([]BranchSummary, error) {
	if v, ok, err := c.get("branches"); ok {
		return v.([]BranchSummary), err
	}
	v, err := c.inner.BranchSummaries()
	c.set("branches", v, err)
	return v, err
}

// CommitLog returns the commit log (not cached — already limited by max-count
// and only fetched once per refresh).
func (c *CachedService) CommitLog(limit int) ([]Commit, error) {
	return c.inner.CommitLog(limit)
}

// StatusReport returns the raw status lines (cached).
func (c *CachedService) StatusReport() ([]string, error) {
	if v, ok, err := c.get("status"); ok {
		return v.([]string), err
	}
	v, err := c.inner.StatusReport()
	c.set("status", v, err)
	return v, err
}

// StashList returns stash entries (cached).
func (c *CachedService) StashList() ([]StashEntry, error) {
	if v, ok, err := c.get("stashes"); ok {
		return v.([]StashEntry), err
	}
	v, err := c.inner.StashList()
	c.set("stashes", v, err)
	return v, err
}

// Diff delegates to the inner service (not cached — content is large and
// changes per-file).
func (c *CachedService) Diff(staged bool, path string) (string, error) {
	return c.inner.Diff(staged, path)
}

// ── Mutations (invalidate cache) ────────────────────────────────────────────

// Checkout switches branch and invalidates the cache.
func (c *CachedService) Checkout(name string) error {
	return c.invalidateAndReturn(c.inner.Checkout(name))
}

// CheckoutRemote checks out a remote ref and invalidates the cache.
func (c *CachedService) CheckoutRemote(remoteRef string) (string, error) {
	name, err := c.inner.CheckoutRemote(remoteRef)
	if err == nil {
		c.Invalidate()
	}
	return name, err
}

// CreateBranch creates a branch and invalidates the cache.
func (c *CachedService) CreateBranch(name string) error {
	return c.invalidateAndReturn(c.inner.CreateBranch(name))
}

// DeleteBranch deletes a branch and invalidates the cache.
func (c *CachedService) DeleteBranch(name string) error {
	return c.invalidateAndReturn(c.inner.DeleteBranch(name))
}

// Stage stages a path and invalidates the cache.
func (c *CachedService) Stage(path string) error {
	return c.invalidateAndReturn(c.inner.Stage(path))
}

// Unstage unstages a path and invalidates the cache.
func (c *CachedService) Unstage(path string) error {
	return c.invalidateAndReturn(c.inner.Unstage(path))
}

// Discard discards changes for a path and invalidates the cache.
func (c *CachedService) Discard(path string, untracked bool) error {
	return c.invalidateAndReturn(c.inner.Discard(path, untracked))
}

// Commit creates a commit and invalidates the cache.
func (c *CachedService) Commit(message string) error {
	return c.invalidateAndReturn(c.inner.Commit(message))
}

// FetchRemotes fetches from all remotes and invalidates the cache.
func (c *CachedService) FetchRemotes() error {
	return c.invalidateAndReturn(c.inner.FetchRemotes())
}

// PullCurrent pulls the current branch and invalidates the cache.
func (c *CachedService) PullCurrent() error {
	return c.invalidateAndReturn(c.inner.PullCurrent())
}

// PushCurrent pushes the current branch and invalidates the cache.
func (c *CachedService) PushCurrent() error {
	return c.invalidateAndReturn(c.inner.PushCurrent())
}
