// Package picker finds candidate wallpaper images and selects one at random.
// Candidates are recomputed on every selection; nothing is cached, so the
// user can drop files into the folder while the program runs.
package picker

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// validExtensions is a set (map for O(1) lookup) of supported image file types.
var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

// List scans the given directory and returns the paths of all supported
// image files found. With recurse set it descends into subdirectories.
func List(dir string, recurse bool) ([]string, error) {
	if recurse {
		return listRecursive(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if validExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	return images, nil
}

func listRecursive(dir string) ([]string, error) {
	var images []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if validExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Pick selects one image uniformly at random from the folder. Repeats
// across calls are allowed; there is no history.
func Pick(dir string, recurse bool) (string, error) {
	images, err := List(dir, recurse)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no images found in %s", dir)
	}
	return images[rand.Intn(len(images))], nil
}
