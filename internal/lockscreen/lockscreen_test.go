package lockscreen

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJPEG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "staging", "lockscreen.jpg")

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < 10; i++ {
		img.Set(i, i, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(src)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	f.Close()

	if err := WriteJPEG(src, dst); err != nil {
		t.Fatalf("WriteJPEG failed: %v", err)
	}

	out, err := os.Open(dst)
	if err != nil {
		t.Fatalf("Expected staged file, got %v", err)
	}
	defer out.Close()

	decoded, err := jpeg.Decode(out)
	if err != nil {
		t.Fatalf("Staged file is not valid JPEG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestWriteJPEGRejectsMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := WriteJPEG(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.jpg"))
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
}
