// Package icon renders the tray icon at runtime: a tiny landscape glyph
// drawn once at full size, downscaled to the standard small sizes, and
// packed into a single multi-resolution ICO container so Windows can pick
// the best fit for the current DPI.
package icon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"

	"github.com/nfnt/resize"
)

// sizes are the ICO entry dimensions, largest first so the base render
// is element zero.
var sizes = []int{48, 32, 24, 16}

// Bytes returns the ICO blob for the tray icon.
func Bytes() ([]byte, error) {
	base := drawGlyph(sizes[0])

	var pngs [][]byte
	for _, size := range sizes {
		img := image.Image(base)
		if size != sizes[0] {
			img = resize.Resize(uint(size), uint(size), base, resize.Lanczos3)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		pngs = append(pngs, buf.Bytes())
	}

	return pack(sizes, pngs), nil
}

// drawGlyph paints a framed landscape: sky, sun disc, and a mountain.
func drawGlyph(size int) *image.NRGBA {
	var (
		sky      = color.NRGBA{R: 0x2E, G: 0x6F, B: 0xB7, A: 0xFF}
		sun      = color.NRGBA{R: 0xFF, G: 0xC9, B: 0x3C, A: 0xFF}
		mountain = color.NRGBA{R: 0x1E, G: 0x40, B: 0x62, A: 0xFF}
	)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, sky)
		}
	}

	// Sun in the upper right quadrant.
	cx, cy := float64(size)*0.68, float64(size)*0.30
	r := float64(size) * 0.16
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, sun)
			}
		}
	}

	// Mountain rising from the bottom left to a mid peak.
	peakX, peakY := float64(size)*0.38, float64(size)*0.40
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fy := float64(y)
			fx := float64(x)
			var slope float64
			if fx <= peakX {
				slope = peakY + (float64(size)-peakY)*(1-fx/peakX)
			} else {
				slope = peakY + (float64(size)-peakY)*(fx-peakX)/(float64(size)-peakX)
			}
			if fy >= slope {
				img.SetNRGBA(x, y, mountain)
			}
		}
	}

	return img
}

// pack builds a multi-entry ICO file from PNG-encoded images.
func pack(sizes []int, pngs [][]byte) []byte {
	n := len(sizes)
	dataOffset := 6 + n*16 // header + directory entries

	var buf bytes.Buffer
	// Header: reserved, type (1=ICO), count.
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	offset := uint32(dataOffset)
	for i, size := range sizes {
		w := uint8(size)
		if size >= 256 {
			w = 0
		}
		buf.Write([]byte{w, w, 0, 0})                                 // width, height, palette, reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))            // color planes
		binary.Write(&buf, binary.LittleEndian, uint16(32))           // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(pngs[i]))) // data size
		binary.Write(&buf, binary.LittleEndian, offset)               // data offset
		offset += uint32(len(pngs[i]))
	}

	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes()
}
