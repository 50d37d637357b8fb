package git

import (
	"sort"
	"strings"
)

// DecodeStatusLine decodes one line of `git status --porcelain` into change
// records. The two leading characters are the index (staged) and worktree
// (unstaged) status letters; "??" is untracked. A line can legally produce two
// records when a file is partially staged. Malformed lines decode to nothing.
func DecodeStatusLine(line string) []FileChange {
	if len(line) < 3 {
		return nil
	}

	index := line[0]
	worktree := line[1]
	path := strings.TrimSpace(line[2:])

	// Rename lines carry "old -> new"; the record tracks the new path.
	if idx := strings.Index(path, " -> "); idx >= 0 {
		path = strings.TrimSpace(path[idx+len(" -> "):])
	}
	if path == "" {
		return nil
	}

	if index == '?' && worktree == '?' {
		return []FileChange{{Path: path, Change: ChangeUntracked, Staged: false}}
	}

	changes := make([]FileChange, 0, 2)
	if index != ' ' {
		changes = append(changes, FileChange{Path: path, Change: changeTypeFor(index), Staged: true})
	}
	if worktree != ' ' {
		changes = append(changes, FileChange{Path: path, Change: changeTypeFor(worktree), Staged: false})
	}
	return changes
}

// DecodeStatusReport decodes a full porcelain status report and returns the
// records stable-sorted by path, so both halves of a partially staged file
// stay adjacent.
func DecodeStatusReport(lines []string) []FileChange {
	changes := make([]FileChange, 0, len(lines))
	for _, line := range lines {
		changes = append(changes, DecodeStatusLine(line)...)
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes
}

func changeTypeFor(code byte) ChangeType {
	switch code {
	case 'A':
		return ChangeAdded
	case 'M':
		return ChangeModified
	case 'D':
		return ChangeDeleted
	case 'R':
		return ChangeRenamed
	case 'C':
		return ChangeCopied
	case 'T':
		return ChangeTypeChange
	case 'U':
		return ChangeUnmerged
	case '?':
		return ChangeUntracked
	default:
		return ChangeUnknown
	}
}
