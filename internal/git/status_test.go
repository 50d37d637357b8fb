package git

import (
	"reflect"
	"testing"
)

func TestDecodeStatusLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []FileChange
	}{
		{
			name: "untracked",
			line: "?? notes.txt",
			want: []FileChange{{Path: "notes.txt", Change: ChangeUntracked, Staged: false}},
		},
		{
			name: "staged added",
			line: "A  new.go",
			want: []FileChange{{Path: "new.go", Change: ChangeAdded, Staged: true}},
		},
		{
			name: "unstaged modified",
			line: " M main.go",
			want: []FileChange{{Path: "main.go", Change: ChangeModified, Staged: false}},
		},
		{
			name: "partially staged",
			line: "MM main.go",
			want: []FileChange{
				{Path: "main.go", Change: ChangeModified, Staged: true},
				{Path: "main.go", Change: ChangeModified, Staged: false},
			},
		},
		{
			name: "staged rename keeps new path",
			line: "R  a.txt -> b.txt",
			want: []FileChange{{Path: "b.txt", Change: ChangeRenamed, Staged: true}},
		},
		{
			name: "staged delete with unstaged modify",
			line: "DM gone.go",
			want: []FileChange{
				{Path: "gone.go", Change: ChangeDeleted, Staged: true},
				{Path: "gone.go", Change: ChangeModified, Staged: false},
			},
		},
		{
			name: "copied",
			line: "C  src.go -> copy.go",
			want: []FileChange{{Path: "copy.go", Change: ChangeCopied, Staged: true}},
		},
		{
			name: "type change",
			line: " T link",
			want: []FileChange{{Path: "link", Change: ChangeTypeChange, Staged: false}},
		},
		{
			name: "unmerged both sides",
			line: "UU conflict.go",
			want: []FileChange{
				{Path: "conflict.go", Change: ChangeUnmerged, Staged: true},
				{Path: "conflict.go", Change: ChangeUnmerged, Staged: false},
			},
		},
		{
			name: "unknown letter",
			line: "Z  weird.go",
			want: []FileChange{{Path: "weird.go", Change: ChangeUnknown, Staged: true}},
		},
		{name: "too short", line: "M", want: nil},
		{name: "empty", line: "", want: nil},
		{name: "empty path", line: "M   ", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeStatusLine(tc.line)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodeStatusLine(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestDecodeStatusReportSortsByPath(t *testing.T) {
	lines := []string{
		"?? zebra.txt",
		"MM alpha.go",
		"A  beta.go",
	}
	got := DecodeStatusReport(lines)
	wantPaths := []string{"alpha.go", "alpha.go", "beta.go", "zebra.txt"}
	if len(got) != len(wantPaths) {
		t.Fatalf("got %d records, want %d: %+v", len(got), len(wantPaths), got)
	}
	for i, p := range wantPaths {
		if got[i].Path != p {
			t.Errorf("record %d path = %q, want %q", i, got[i].Path, p)
		}
	}
	// Both halves of the partially staged file stay adjacent and keep their
	// per-line order (staged first).
	if !got[0].Staged || got[1].Staged {
		t.Errorf("partially staged pair out of order: %+v", got[:2])
	}
}

func TestDecodeStatusReportEmpty(t *testing.T) {
	if got := DecodeStatusReport(nil); len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}
