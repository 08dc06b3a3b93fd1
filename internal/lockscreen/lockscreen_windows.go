//go:build windows

package lockscreen

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const personalizationKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\PersonalizationCSP`

// Set installs the image at src as the lock screen background. The copy
// lives under ProgramData so it survives after the source folder moves.
func Set(src string) error {
	dst := filepath.Join(programData(), "wallshift", "lockscreen.jpg")

	if err := WriteJPEG(src, dst); err != nil {
		return fmt.Errorf("stage lock screen image: %w", err)
	}

	grantSystemRead(dst)

	if err := writePolicy(dst); err != nil {
		return fmt.Errorf("set lock screen policy: %w", err)
	}
	return nil
}

func programData() string {
	if dir := os.Getenv("ProgramData"); dir != "" {
		return dir
	}
	return `C:\ProgramData`
}

// grantSystemRead lets the logon UI (running as SYSTEM) read the staged
// file. Best effort: a non-elevated process may not own the ACL.
func grantSystemRead(path string) {
	out, err := exec.Command("icacls", path, "/grant", "*S-1-5-18:R", "*S-1-5-32-545:R").CombinedOutput()
	if err != nil {
		log.Printf("warning: could not adjust lock screen file permissions: %v: %s", err, strings.TrimSpace(string(out)))
	}
}

// writePolicy points the PersonalizationCSP keys at the staged file.
// HKLM writes fail without elevation, which callers downgrade to a warning.
func writePolicy(imagePath string) error {
	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, personalizationKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open PersonalizationCSP key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue("LockScreenImagePath", imagePath); err != nil {
		return fmt.Errorf("write LockScreenImagePath: %w", err)
	}
	if err := k.SetStringValue("LockScreenImageUrl", imagePath); err != nil {
		return fmt.Errorf("write LockScreenImageUrl: %w", err)
	}
	if err := k.SetDWordValue("LockScreenImageStatus", 1); err != nil {
		return fmt.Errorf("write LockScreenImageStatus: %w", err)
	}
	return nil
}
