// Package autostart installs and removes the two logon launch mechanisms:
// a shortcut in the user's Startup folder and a per-user scheduled task.
// The two never interact; either can be installed or removed on its own.
// Creates overwrite an existing artifact and removals of a missing
// artifact succeed silently, so both operations are idempotent.
package autostart

import (
	"fmt"
	"strings"
)

// DefaultTaskName is the scheduled task name used unless overridden.
const DefaultTaskName = "WallShift"

// ShortcutName is the .lnk file placed in the Startup folder.
const ShortcutName = "WallShift.lnk"

// quote wraps a path in double quotes so it survives spaces.
func quote(s string) string {
	return `"` + s + `"`
}

// shortcutScript builds the PowerShell one-liner that creates the logon
// shortcut through the WScript.Shell COM object.
func shortcutScript(lnkPath, target string, args []string) string {
	return fmt.Sprintf(
		`$ws = New-Object -ComObject WScript.Shell; `+
			`$s = $ws.CreateShortcut(%s); `+
			`$s.TargetPath = %s; `+
			`$s.Arguments = %s; `+
			`$s.WorkingDirectory = %s; `+
			`$s.Save()`,
		psQuote(lnkPath), psQuote(target), psQuote(strings.Join(args, " ")), psQuote(dirOf(target)))
}

// psQuote single-quotes a string for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func dirOf(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[:i]
	}
	return "."
}

// taskCreateArgs builds the schtasks arguments that register a logon task.
// /F overwrites an existing task with the same name.
func taskCreateArgs(name, exe string, args []string) []string {
	run := quote(exe)
	if len(args) > 0 {
		run += " " + strings.Join(args, " ")
	}
	return []string{"/Create", "/F", "/SC", "ONLOGON", "/TN", name, "/TR", run}
}

// taskDeleteArgs builds the schtasks arguments that remove the task.
func taskDeleteArgs(name string) []string {
	return []string{"/Delete", "/F", "/TN", name}
}

// taskQueryArgs builds the schtasks arguments that probe for the task.
func taskQueryArgs(name string) []string {
	return []string{"/Query", "/TN", name}
}
