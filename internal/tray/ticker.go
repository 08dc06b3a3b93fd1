package tray

import "time"

// resetTicker applies a new interval and discards any tick already
// buffered in the channel. Reset alone does not drain the channel, so a
// tick that fired while the schedule was paused would otherwise trigger
// an immediate wallpaper change the moment the schedule is re-enabled.
func resetTicker(t *time.Ticker, d time.Duration) {
	t.Reset(d)
	select {
	case <-t.C:
	default:
	}
}
