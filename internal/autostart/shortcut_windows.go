//go:build windows

package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ShortcutPath returns the location of the logon shortcut in the user's
// Startup folder.
func ShortcutPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", fmt.Errorf("APPDATA is not set")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup", ShortcutName), nil
}

// ShortcutInstalled reports whether the logon shortcut exists.
func ShortcutInstalled() bool {
	path, err := ShortcutPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// InstallShortcut creates (or overwrites) the Startup folder shortcut
// pointing at this executable with the given arguments.
func InstallShortcut(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("get executable: %w", err)
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	lnkPath, err := ShortcutPath()
	if err != nil {
		return err
	}

	script := shortcutScript(lnkPath, exe, args)
	out, err := runPowerShell(script)
	if err != nil {
		return fmt.Errorf("create shortcut: %w: %s", err, out)
	}
	return nil
}

// UninstallShortcut removes the Startup folder shortcut. A shortcut that
// is already gone counts as success.
func UninstallShortcut() error {
	path, err := ShortcutPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove shortcut: %w", err)
	}
	return nil
}

// runPowerShell executes a script fragment without loading the profile.
func runPowerShell(script string) (string, error) {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", script)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
