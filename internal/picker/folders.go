package picker

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoFolder is returned when none of the candidate wallpaper folders exist.
var ErrNoFolder = errors.New("no wallpaper folder found")

// ResolveFolder picks the wallpaper directory. The explicit path wins when
// it exists; otherwise the candidates are tried in a fixed priority order:
// the platform Pictures folder's Wallpapers subfolder, then the profile's
// Pictures\Wallpapers, Pictures, and lowercase wallpapers directories.
func ResolveFolder(explicit string) (string, error) {
	for _, dir := range candidateFolders(explicit) {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", ErrNoFolder
}

func candidateFolders(explicit string) []string {
	candidates := []string{explicit}

	if pictures := picturesDir(); pictures != "" {
		candidates = append(candidates, filepath.Join(pictures, "Wallpapers"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "Pictures", "Wallpapers"),
			filepath.Join(home, "Pictures"),
			filepath.Join(home, "wallpapers"),
		)
	}

	return candidates
}
