//go:build !windows

package tray

import (
	"log"
	"runtime"

	"wallshift/internal/config"
	"wallshift/internal/wallpaper"
)

// Run is only implemented on Windows.
func Run(cfg *config.Config, apply func(path string, style wallpaper.Style) error) {
	log.Fatalf("tray mode is not supported on %s", runtime.GOOS)
}
