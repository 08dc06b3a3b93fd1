//go:build !windows

package lockscreen

import (
	"errors"
	"runtime"
)

// Set is only implemented on Windows.
func Set(src string) error {
	return errors.New("setting the lock screen is not supported on " + runtime.GOOS)
}
