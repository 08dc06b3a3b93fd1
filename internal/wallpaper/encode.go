package wallpaper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"
)

// EncodeBMP re-encodes the image at src into a BMP file at dst.
// Older Windows releases only accept BMP wallpapers, so callers can
// route the chosen image through this before applying it.
func EncodeBMP(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := bmp.Encode(out, img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}
