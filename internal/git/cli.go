package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotARepo is returned when the path is not inside a Git repository.
var ErrNotARepo = errors.New("not a git repository")

// cmdTimeout is the maximum duration any single git command may run.
// Prevents hangs on huge repos or network operations.
const cmdTimeout = 30 * time.Second

// CLIService implements Service by shelling out to the git CLI.
//   - GIT_OPTIONAL_LOCKS=0 on all read commands (no lock contention)
//   - Context-based timeouts prevent hangs
//   - Stdout/Stderr separated — stderr noise doesn't corrupt output
type CLIService struct {
	root   string // Absolute path to the repo root.
	gitDir string // Path to the .git directory.
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// NewCLIService opens a Git repository at the given path.
func NewCLIService(path string) (*CLIService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, nil, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	return &CLIService{
		root:   strings.TrimSpace(topLevel),
		gitDir: gd,
	}, nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

// readEnv is the environment set on all read-only git commands.
// GIT_OPTIONAL_LOCKS=0 prevents git from acquiring optional locks,
// which matters when another git process holds the index.
var readEnv = []string{"GIT_OPTIONAL_LOCKS=0"}

// run executes a git command at the repo root with read-optimised env.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, readEnv, args...)
}

// runWrite executes a write git command (no optional-locks override).
func (s *CLIService) runWrite(args ...string) (string, error) {
	return runGit(s.root, nil, args...)
}

// runGit executes a git command with a context timeout.
// Stdout and stderr are separated so stderr noise doesn't corrupt output.
func runGit(dir string, extraEnv []string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), errMsg, err)
	}
	return stdout.String(), nil
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// RepoName returns the repository display name (root directory basename).
func (s *CLIService) RepoName() string { return filepath.Base(s.root) }

// CurrentBranch returns the checked-out branch name, or the short hash when
// HEAD is detached.
func (s *CLIService) CurrentBranch() (string, error) {
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("reading HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// ── Queries ─────────────────────────────────────────────────────────────────

// BranchSummaries returns all local and remote branches, sorted by name.
func (s *CLIService) BranchSummaries() ([]BranchSummary, error) {
	out, err := s.run("branch", "-a", "--format="+branchFormat)
	if err != nil {
		return nil, err
	}
	branches := ParseBranchOutput(out)
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// CommitLog returns the reverse-chronological commit log across all refs.
func (s *CLIService) CommitLog(limit int) ([]Commit, error) {
	out, err := s.run("log",
		fmt.Sprintf("--max-count=%d", limit),
		"--all", "--no-optional-locks",
		LogFormatFlag())
	if err != nil {
		return nil, fmt.Errorf("getting log: %w", err)
	}
	return ParseLogOutput(out), nil
}

// StatusReport returns the raw porcelain status lines for the decoder.
func (s *CLIService) StatusReport() ([]string, error) {
	out, err := s.run("status", "--porcelain",
		"--no-optional-locks", "--untracked-files=normal")
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// StashList returns stash entries.
func (s *CLIService) StashList() ([]StashEntry, error) {
	out, err := s.run("stash", "list")
	if err != nil {
		return nil, err
	}
	return ParseStashList(out), nil
}

// Diff returns the diff for a path.
func (s *CLIService) Diff(staged bool, path string) (string, error) {
	args := []string{"diff", "--color=never", "--no-optional-locks", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)
	return s.run(args...)
}

// ── Mutations ───────────────────────────────────────────────────────────────

// Checkout switches to the given local branch.
func (s *CLIService) Checkout(name string) error {
	_, err := s.runWrite("checkout", name)
	return err
}

// CheckoutRemote checks out a remote-tracking ref as a local tracking branch
// and returns the resulting local branch name.
func (s *CLIService) CheckoutRemote(remoteRef string) (string, error) {
	if _, err := s.runWrite("checkout", "--track", remoteRef); err != nil {
		return "", err
	}
	// "origin/feature" tracks as local "feature".
	if idx := strings.Index(remoteRef, "/"); idx >= 0 {
		return remoteRef[idx+1:], nil
	}
	return remoteRef, nil
}

// CreateBranch creates and checks out a new branch.
func (s *CLIService) CreateBranch(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("branch name cannot be empty")
	}
	_, err := s.runWrite("checkout", "-b", name)
	return err
}

// DeleteBranch deletes the given branch.
func (s *CLIService) DeleteBranch(name string) error {
	_, err := s.runWrite("branch", "-d", name)
	return err
}

// Stage stages the given path.
func (s *CLIService) Stage(path string) error {
	_, err := s.runWrite("add", "--", path)
	return err
}

// Unstage unstages the given path.
func (s *CLIService) Unstage(path string) error {
	_, err := s.runWrite("reset", "HEAD", "--", path)
	return err
}

// Discard throws away local changes for the given path. Untracked files have
// nothing to check out, so they are removed instead.
func (s *CLIService) Discard(path string, untracked bool) error {
	if untracked {
		_, err := s.runWrite("clean", "-f", "--", path)
		return err
	}
	_, err := s.runWrite("checkout", "--", path)
	return err
}

// Commit creates a new commit with the given message.
func (s *CLIService) Commit(message string) error {
	_, err := s.runWrite("commit", "-m", message)
	return err
}

// FetchRemotes fetches from all remotes.
func (s *CLIService) FetchRemotes() error {
	_, err := s.runWrite("fetch", "--all", "--prune")
	return err
}

// PullCurrent pulls the current branch from its upstream.
func (s *CLIService) PullCurrent() error {
	_, err := s.runWrite("pull")
	return err
}

// PushCurrent pushes the current branch to its upstream.
func (s *CLIService) PushCurrent() error {
	_, err := s.runWrite("push")
	return err
}
