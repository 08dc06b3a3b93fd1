//go:build !windows

package autostart

import (
	"errors"
	"runtime"
)

// InstallShortcut is only implemented on Windows.
func InstallShortcut(args []string) error {
	return errors.New("startup shortcuts are not supported on " + runtime.GOOS)
}

// UninstallShortcut is only implemented on Windows.
func UninstallShortcut() error {
	return errors.New("startup shortcuts are not supported on " + runtime.GOOS)
}

// InstallTask is only implemented on Windows.
func InstallTask(name string, args []string) error {
	return errors.New("scheduled tasks are not supported on " + runtime.GOOS)
}

// UninstallTask is only implemented on Windows.
func UninstallTask(name string) error {
	return errors.New("scheduled tasks are not supported on " + runtime.GOOS)
}
