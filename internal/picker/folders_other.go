//go:build !windows

package picker

import (
	"os"
	"path/filepath"
)

func picturesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Pictures")
}
