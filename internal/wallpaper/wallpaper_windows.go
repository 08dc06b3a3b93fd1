//go:build windows

package wallpaper

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Set applies the image at path as the desktop wallpaper with the given
// style. The style and tile registry values are written first because
// Windows reads them during the SystemParametersInfo call.
func Set(path string, style Style) error {
	if err := writeStyle(style); err != nil {
		return err
	}

	pathUTF16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(pathUTF16)),
		uintptr(spifUpdateIniFile|spifSendWinIniChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}

	return nil
}

// writeStyle persists the scaling mode under the per-user desktop key.
func writeStyle(style Style) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open desktop settings key: %w", err)
	}
	defer k.Close()

	styleValue, tileValue := style.Codes()
	if err := k.SetStringValue("WallpaperStyle", styleValue); err != nil {
		return fmt.Errorf("write WallpaperStyle: %w", err)
	}
	if err := k.SetStringValue("TileWallpaper", tileValue); err != nil {
		return fmt.Errorf("write TileWallpaper: %w", err)
	}
	return nil
}
