package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ── Branch parsing ──────────────────────────────────────────────────────────

const branchFormat = "%(refname)%00%(upstream:track)"

// ParseBranchOutput parses `git branch -a --format=` output into summaries.
// Symbolic remote HEAD entries (refs/remotes/origin/HEAD) are skipped.
func ParseBranchOutput(out string) []BranchSummary {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	branches := make([]BranchSummary, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x00", 2)
		ref := strings.TrimSpace(parts[0])

		var b BranchSummary
		switch {
		case strings.HasPrefix(ref, "refs/heads/"):
			b.Name = strings.TrimPrefix(ref, "refs/heads/")
		case strings.HasPrefix(ref, "refs/remotes/"):
			short := strings.TrimPrefix(ref, "refs/remotes/")
			if strings.HasSuffix(short, "/HEAD") {
				continue
			}
			b.Name = short
			b.IsRemote = true
			b.RemoteRef = short
		default:
			continue
		}

		if len(parts) == 2 {
			b.Ahead, b.Behind = parseTrack(strings.TrimSpace(parts[1]))
		}
		branches = append(branches, b)
	}
	return branches
}

// parseTrack decodes "[ahead N, behind M]" style upstream tracking info.
func parseTrack(track string) (ahead, behind int) {
	if track == "" || track == "[gone]" {
		return 0, 0
	}
	_, _ = fmt.Sscanf(track, "[ahead %d, behind %d]", &ahead, &behind)
	if ahead == 0 {
		_, _ = fmt.Sscanf(track, "[ahead %d]", &ahead)
	}
	if behind == 0 {
		_, _ = fmt.Sscanf(track, "[behind %d]", &behind)
	}
	return ahead, behind
}

// ── Log / commit parsing ────────────────────────────────────────────────────

const logFormat = "%h%x00%s%x00%an%x00%at%x00%D"

// LogFormatFlag returns the --format flag for git log.
func LogFormatFlag() string {
	return "--format=" + logFormat
}

// ParseLogOutput parses one commit per line in our custom NUL-field format.
func ParseLogOutput(out string) []Commit {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x00", 5)
		if len(parts) < 5 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		if id == "" {
			continue
		}
		ts, _ := strconv.ParseInt(strings.TrimSpace(parts[3]), 10, 64)
		commits = append(commits, Commit{
			ID:       id,
			Summary:  strings.TrimSpace(parts[1]),
			Author:   strings.TrimSpace(parts[2]),
			When:     time.Unix(ts, 0),
			Branches: parseBranchLabels(strings.TrimSpace(parts[4])),
		})
	}
	return commits
}

// parseBranchLabels extracts branch tip names from a %D decoration string.
// Tags and the bare HEAD marker are not branch labels.
func parseBranchLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	var labels []string
	for _, r := range strings.Split(raw, ", ") {
		r = strings.TrimSpace(r)
		switch {
		case r == "" || r == "HEAD":
			continue
		case strings.HasPrefix(r, "tag: "):
			continue
		case strings.HasPrefix(r, "HEAD -> "):
			labels = append(labels, strings.TrimPrefix(r, "HEAD -> "))
		default:
			labels = append(labels, r)
		}
	}
	return labels
}

// ── Stash parsing ───────────────────────────────────────────────────────────

// ParseStashList parses `git stash list`.
func ParseStashList(out string) []StashEntry {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	entries := make([]StashEntry, 0, len(lines))
	for _, line := range lines {
		var idx int
		if _, err := fmt.Sscanf(line, "stash@{%d}", &idx); err != nil {
			continue
		}
		msg := line
		if colonIdx := strings.Index(line, ": "); colonIdx != -1 {
			rest := line[colonIdx+2:]
			if secondColon := strings.Index(rest, ": "); secondColon != -1 {
				msg = rest[secondColon+2:]
			} else {
				msg = rest
			}
		}
		branch := ""
		if strings.Contains(line, "On ") {
			parts := strings.SplitN(line, "On ", 2)
			if len(parts) == 2 {
				if colonIdx := strings.Index(parts[1], ":"); colonIdx != -1 {
					branch = parts[1][:colonIdx]
				}
			}
		}
		entries = append(entries, StashEntry{Index: idx, Message: msg, Branch: branch})
	}
	return entries
}
