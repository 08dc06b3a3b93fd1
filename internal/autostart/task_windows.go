//go:build windows

package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// InstallTask registers (or replaces) a per-user scheduled task that
// relaunches this executable with the given arguments at logon.
func InstallTask(name string, args []string) error {
	if name == "" {
		name = DefaultTaskName
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("get executable: %w", err)
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	cmd := exec.Command("schtasks", taskCreateArgs(name, exe, args)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("register task %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// UninstallTask deletes the scheduled task. A task that does not exist
// counts as success.
func UninstallTask(name string) error {
	if name == "" {
		name = DefaultTaskName
	}

	if !TaskInstalled(name) {
		return nil
	}

	cmd := exec.Command("schtasks", taskDeleteArgs(name)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("delete task %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// TaskInstalled reports whether the scheduled task is registered.
func TaskInstalled(name string) bool {
	if name == "" {
		name = DefaultTaskName
	}
	return exec.Command("schtasks", taskQueryArgs(name)...).Run() == nil
}
