// Package watcher monitors Git-internal state files so the dashboard can
// refresh immediately after a git operation instead of waiting for the next
// poll tick. Only a handful of paths inside .git are watched; recursively
// watching the working tree would exhaust inotify/kqueue watches on large
// repositories.
//
// Watched paths:
//   - .git/index        → staging changes (git add/reset)
//   - .git/HEAD         → branch switches, commits
//   - .git/refs/heads   → local branch updates
//   - .git/refs/stash   → stash push/pop
//   - .git/refs/remotes → fetch/pull updates
//
// Working-tree edits are picked up by the periodic refresh tick.
package watcher

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects relevant Git state changes.
type Event struct{}

// Watch monitors critical Git-internal paths for state changes and sends
// Event values on the returned channel. Rapid bursts are coalesced via the
// debounce window.
//
// gitDir should be the absolute path to the .git directory (handles worktrees
// where .git is a file pointing elsewhere).
//
// Call the returned stop function to tear down the watcher.
func Watch(gitDir string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	targets := []string{
		gitDir,                              // catches HEAD, index, ORIG_HEAD etc.
		filepath.Join(gitDir, "refs"),       // catches all ref updates, incl. refs/stash
		filepath.Join(gitDir, "refs/heads"), // local branch changes
	}

	// Also watch refs/remotes if it exists (fetch/pull updates).
	remotesDir := filepath.Join(gitDir, "refs/remotes")
	if info, err := os.Stat(remotesDir); err == nil && info.IsDir() {
		targets = append(targets, remotesDir)
		entries, err := os.ReadDir(remotesDir)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() {
					targets = append(targets, filepath.Join(remotesDir, e.Name()))
				}
			}
		}
	}

	for _, t := range targets {
		if info, statErr := os.Stat(t); statErr == nil && info.IsDir() {
			if addErr := w.Add(t); addErr != nil {
				// Non-fatal: some dirs may not exist yet.
				continue
			}
		} else if statErr == nil {
			_ = w.Add(filepath.Dir(t))
		}
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Random jitter spreads the git subprocess load when several instances
	// watch the same .git directory.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev.Name) {
					continue
				}
				jitter := time.Duration(rand.Int64N(int64(jitterRange)))
				d := debounce + jitter
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore returns true for events that should not trigger a refresh.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	// Git lock files are transient, mid-operation. Never trigger on these:
	// git holds locks during status/add/commit and re-invoking git while a
	// lock is held would fail.
	if strings.HasSuffix(base, ".lock") {
		return true
	}

	// Editor swap/temp files that end up in .git.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}

	// Fires while a commit message is being typed in an editor.
	if base == "COMMIT_EDITMSG" {
		return true
	}

	if base == "gc.log" || strings.HasPrefix(base, "fsmonitor") {
		return true
	}

	return false
}
