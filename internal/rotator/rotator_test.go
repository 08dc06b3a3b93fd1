package rotator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func imageFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"a.jpg", "b.png"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("fake content"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return dir
}

func TestRunOnceAppliesExactlyOne(t *testing.T) {
	var applies atomic.Int32
	r := &Rotator{
		Folder:   imageFolder(t),
		Interval: time.Millisecond,
		Once:     true,
		Apply: func(string) error {
			applies.Add(1)
			return nil
		},
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := applies.Load(); got != 1 {
		t.Errorf("Expected exactly 1 apply in one-shot mode, got %d", got)
	}
}

func TestRunLoopsAcrossIntervals(t *testing.T) {
	var applies atomic.Int32
	r := &Rotator{
		Folder:   imageFolder(t),
		Interval: 10 * time.Millisecond,
		Apply: func(string) error {
			applies.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline error, got %v", err)
	}
	if got := applies.Load(); got < 3 {
		t.Errorf("Expected at least 3 applies across intervals, got %d", got)
	}
}

func TestRunSurvivesTickFailures(t *testing.T) {
	var applies atomic.Int32
	r := &Rotator{
		Folder:   imageFolder(t),
		Interval: 10 * time.Millisecond,
		Apply: func(string) error {
			// Fail every apply after the first; the loop must keep ticking.
			if applies.Add(1) > 1 {
				return errors.New("transient failure")
			}
			return nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)
	if got := applies.Load(); got < 3 {
		t.Errorf("Expected the loop to retry after failures, got %d applies", got)
	}
}

func TestRunFailsFastWithoutImages(t *testing.T) {
	r := &Rotator{
		Folder:   t.TempDir(),
		Interval: time.Millisecond,
		Apply:    func(string) error { return nil },
	}

	if err := r.Run(context.Background()); err == nil {
		t.Fatal("Expected startup error for an empty folder, got nil")
	}
}
