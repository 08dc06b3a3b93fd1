package picker

import (
	"os"
	"path/filepath"
	"testing"
)

// pointHomeAt redirects the user profile into a temp dir for the test.
func pointHomeAt(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
}

func TestResolveFolderPrefersExplicitPath(t *testing.T) {
	home := t.TempDir()
	pointHomeAt(t, home)

	explicit := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "Pictures"), 0755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	got, err := ResolveFolder(explicit)
	if err != nil {
		t.Fatalf("ResolveFolder failed: %v", err)
	}
	if got != explicit {
		t.Errorf("Expected explicit folder %s, got %s", explicit, got)
	}
}

func TestResolveFolderFallsThroughInOrder(t *testing.T) {
	home := t.TempDir()
	pointHomeAt(t, home)

	pictures := filepath.Join(home, "Pictures")
	lower := filepath.Join(home, "wallpapers")
	for _, d := range []string{pictures, lower} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	// A missing explicit path must not short-circuit the fallbacks.
	got, err := ResolveFolder(filepath.Join(home, "does-not-exist"))
	if err != nil {
		t.Fatalf("ResolveFolder failed: %v", err)
	}
	if got != pictures {
		t.Errorf("Expected %s, got %s", pictures, got)
	}

	// Pictures\Wallpapers outranks Pictures once it exists.
	wallpapers := filepath.Join(pictures, "Wallpapers")
	if err := os.MkdirAll(wallpapers, 0755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	got, err = ResolveFolder("")
	if err != nil {
		t.Fatalf("ResolveFolder failed: %v", err)
	}
	if got != wallpapers {
		t.Errorf("Expected %s, got %s", wallpapers, got)
	}
}

func TestResolveFolderFailsWhenNothingExists(t *testing.T) {
	pointHomeAt(t, t.TempDir())

	if _, err := ResolveFolder(""); err == nil {
		t.Fatal("Expected an error when no candidate folder exists, got nil")
	}
}
