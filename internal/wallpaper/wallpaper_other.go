//go:build !windows

package wallpaper

import (
	"errors"
	"runtime"
)

// Set is only implemented on Windows.
func Set(path string, style Style) error {
	return errors.New("setting the wallpaper is not supported on " + runtime.GOOS)
}
