// Package rotator drives the periodic wallpaper change. It owns no OS
// calls itself: the apply step is injected, so the same loop serves the
// foreground mode, one-shot mode, and the tray timer.
package rotator

import (
	"context"
	"log"
	"time"

	"wallshift/internal/picker"
)

// Applier applies the image at the given path. The concrete function
// composes registry writes, the native call, and any optional re-encoding.
type Applier func(path string) error

// Rotator repeatedly picks a random image from Folder and applies it.
type Rotator struct {
	Folder   string
	Recurse  bool
	Interval time.Duration
	Once     bool
	Apply    Applier
}

// ChangeOnce picks one random image and applies it.
func (r *Rotator) ChangeOnce() error {
	image, err := picker.Pick(r.Folder, r.Recurse)
	if err != nil {
		return err
	}
	log.Printf("applying wallpaper %s", image)
	return r.Apply(image)
}

// Run applies a wallpaper immediately and, unless Once is set, keeps
// reapplying every Interval until the context is cancelled. The first
// apply is fatal on error; later failures are logged and retried on the
// next tick so a transient problem never kills the loop.
func (r *Rotator) Run(ctx context.Context) error {
	if err := r.ChangeOnce(); err != nil {
		return err
	}
	if r.Once {
		return nil
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.ChangeOnce(); err != nil {
				log.Printf("wallpaper change failed: %v", err)
			}
		}
	}
}
