package notify

import (
	"testing"
	"time"
)

func TestNoticeLifecycle(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := NewWithClock(func() time.Time { return clock })

	if n.Message() != "" {
		t.Fatal("fresh notice should be empty")
	}

	n.Set("pushed", 10*time.Second)
	if got := n.Message(); got != "pushed" {
		t.Fatalf("message = %q, want %q", got, "pushed")
	}

	clock = clock.Add(9 * time.Second)
	if got := n.Message(); got != "pushed" {
		t.Fatalf("message expired early: %q", got)
	}

	clock = clock.Add(time.Second)
	if got := n.Message(); got != "" {
		t.Fatalf("message survived deadline: %q", got)
	}
}

func TestNoticeSetOverwritesAndRearms(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := NewWithClock(func() time.Time { return clock })

	n.Set("first", 10*time.Second)
	clock = clock.Add(8 * time.Second)
	n.Set("second", 10*time.Second)

	clock = clock.Add(9 * time.Second)
	if got := n.Message(); got != "second" {
		t.Fatalf("message = %q, want %q", got, "second")
	}
	clock = clock.Add(2 * time.Second)
	if got := n.Message(); got != "" {
		t.Fatalf("message = %q, want empty", got)
	}
}

func TestNoticeClear(t *testing.T) {
	n := New()
	n.Set("hello", time.Minute)
	n.Clear()
	if n.Message() != "" {
		t.Fatal("clear did not drop the message")
	}
}
