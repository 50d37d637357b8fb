package watcher

import "testing"

func TestShouldIgnore(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/repo/.git/index.lock", true},
		{"/repo/.git/HEAD.lock", true},
		{"/repo/.git/.#HEAD", true},
		{"/repo/.git/config~", true},
		{"/repo/.git/COMMIT_EDITMSG", true},
		{"/repo/.git/gc.log", true},
		{"/repo/.git/fsmonitor--daemon.ipc", true},
		{"/repo/.git/index", false},
		{"/repo/.git/HEAD", false},
		{"/repo/.git/refs/heads/main", false},
		{"/repo/.git/refs/stash", false},
	}
	for _, tc := range cases {
		if got := shouldIgnore(tc.path); got != tc.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestTimerChanNil(t *testing.T) {
	if timerChan(nil) != nil {
		t.Fatal("nil timer should yield nil channel")
	}
}
