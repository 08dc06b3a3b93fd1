package tray

import (
	"testing"
	"time"
)

// TestResetTickerDropsBufferedTick simulates a paused schedule: a tick
// fires and sits in the channel, then the settings change. The reset must
// not let that stale tick through as an immediate change.
func TestResetTickerDropsBufferedTick(t *testing.T) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	// Let a tick fire and stay buffered, as happens while paused.
	time.Sleep(30 * time.Millisecond)

	resetTicker(ticker, 500*time.Millisecond)

	select {
	case <-ticker.C:
		t.Fatal("Stale tick survived the reset")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestResetTickerKeepsTicking(t *testing.T) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	resetTicker(ticker, 10*time.Millisecond)

	select {
	case <-ticker.C:
	case <-time.After(time.Second):
		t.Fatal("Expected a tick at the new interval")
	}
}
