package icon

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"
)

// TestBytesIsMultiResolutionICO walks the ICO directory and decodes each
// embedded PNG payload.
func TestBytesIsMultiResolutionICO(t *testing.T) {
	data, err := Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) < 6 {
		t.Fatalf("ICO too short: %d bytes", len(data))
	}

	if typ := binary.LittleEndian.Uint16(data[2:]); typ != 1 {
		t.Errorf("Expected ICO type 1, got %d", typ)
	}
	count := int(binary.LittleEndian.Uint16(data[4:]))
	if count != len(sizes) {
		t.Fatalf("Expected %d directory entries, got %d", len(sizes), count)
	}

	for i := 0; i < count; i++ {
		entry := data[6+i*16 : 6+(i+1)*16]
		size := binary.LittleEndian.Uint32(entry[8:])
		offset := binary.LittleEndian.Uint32(entry[12:])
		if int(offset+size) > len(data) {
			t.Fatalf("Entry %d points outside the file", i)
		}

		img, err := png.Decode(bytes.NewReader(data[offset : offset+size]))
		if err != nil {
			t.Fatalf("Entry %d payload is not PNG: %v", i, err)
		}
		if got := img.Bounds().Dx(); got != sizes[i] {
			t.Errorf("Entry %d: expected %dpx, got %dpx", i, sizes[i], got)
		}
	}
}
