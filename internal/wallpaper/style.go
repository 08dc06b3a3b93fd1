// Package wallpaper applies an image as the desktop background.
// It maps a scaling style to the two registry values Windows reads
// (WallpaperStyle and TileWallpaper) and performs the native apply call.
package wallpaper

import (
	"fmt"
	"strings"
)

// Style is a desktop background scaling mode.
type Style string

const (
	StyleFill    Style = "fill"
	StyleFit     Style = "fit"
	StyleStretch Style = "stretch"
	StyleCenter  Style = "center"
	StyleTile    Style = "tile"
	StyleSpan    Style = "span"
)

// styleCodes maps each style to the (WallpaperStyle, TileWallpaper)
// registry values. Tiling is expressed through TileWallpaper alone,
// with WallpaperStyle reset to 0.
var styleCodes = map[Style][2]string{
	StyleFill:    {"10", "0"},
	StyleFit:     {"6", "0"},
	StyleStretch: {"2", "0"},
	StyleCenter:  {"0", "0"},
	StyleTile:    {"0", "1"},
	StyleSpan:    {"22", "0"},
}

// Styles lists all supported styles, in menu/help order.
var Styles = []Style{StyleFill, StyleFit, StyleStretch, StyleCenter, StyleTile, StyleSpan}

// ParseStyle converts user input into a Style, case-insensitively.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := styleCodes[style]; !ok {
		return "", fmt.Errorf("unknown style %q (want one of fill, fit, stretch, center, tile, span)", s)
	}
	return style, nil
}

// Codes returns the registry values for the style. Unknown styles get
// the fill codes so a bad value can never wedge the applier.
func (s Style) Codes() (styleValue, tileValue string) {
	codes, ok := styleCodes[s]
	if !ok {
		codes = styleCodes[StyleFill]
	}
	return codes[0], codes[1]
}
