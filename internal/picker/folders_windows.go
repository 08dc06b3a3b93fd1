//go:build windows

package picker

import "golang.org/x/sys/windows"

// picturesDir returns the shell's Pictures folder, which may live outside
// the profile when the user has relocated it.
func picturesDir() string {
	path, err := windows.KnownFolderPath(windows.FOLDERID_Pictures, 0)
	if err != nil {
		return ""
	}
	return path
}
