// Package lockscreen mirrors the chosen wallpaper onto the Windows lock
// screen. The image is normalized to JPEG, copied to a machine-wide
// location the logon UI can read, and enforced through the
// PersonalizationCSP policy keys. Writing those keys needs elevation;
// callers are expected to treat failures as warnings.
package lockscreen

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
)

// jpegQuality is the fixed quality for the lock screen copy.
const jpegQuality = 90

// WriteJPEG re-encodes the image at src as a JPEG at dst, creating the
// destination directory if needed.
func WriteJPEG(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
