package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"os"

	"github.com/mauserzjeh/dxt"

	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

const (
	ddsMagic      = "DDS "
	ddsHeaderSize = 124
	ddsDataOffset = 4 + ddsHeaderSize
)

// ddsHeader is the fixed-layout DDS file header, little endian.
type ddsHeader struct {
	Size        uint32
	Flags       uint32
	Height      uint32
	Width       uint32
	PitchOrSize uint32
	Depth       uint32
	MipMapCount uint32
	Reserved1   [11]uint32
	PixelFormat struct {
		Size        uint32
		Flags       uint32
		FourCC      [4]byte
		RGBBitCount uint32
		RBitMask    uint32
		GBitMask    uint32
		BBitMask    uint32
		ABitMask    uint32
	}
	Caps      [4]uint32
	Reserved2 uint32
}

// DecodeDDS reads a DXT1/DXT5 compressed DDS file and returns the
// top-level mip as RGBA.
func DecodeDDS(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < ddsDataOffset || string(data[:4]) != ddsMagic {
		return nil, fmt.Errorf("%s: not a DDS file", path)
	}

	var hdr ddsHeader
	if err := binary.Read(bytes.NewReader(data[4:ddsDataOffset]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%s: bad DDS header: %w", path, err)
	}
	if hdr.Size != ddsHeaderSize {
		return nil, fmt.Errorf("%s: unexpected DDS header size %d", path, hdr.Size)
	}

	w, h := uint(hdr.Width), uint(hdr.Height)
	blocks := data[ddsDataOffset:]
	fourCC := string(hdr.PixelFormat.FourCC[:])
	utils.Debug("DDS %s: %dx%d %s", path, w, h, fourCC)

	var pix []byte
	switch fourCC {
	case "DXT1":
		pix, err = dxt.DecodeDXT1(blocks, w, h)
	case "DXT5":
		pix, err = dxt.DecodeDXT5(blocks, w, h)
	default:
		return nil, fmt.Errorf("%s: unsupported DDS format %q", path, fourCC)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: DXT decode: %w", path, err)
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(w) * 4,
		Rect:   image.Rect(0, 0, int(w), int(h)),
	}, nil
}
