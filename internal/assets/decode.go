package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExt reports whether path has an image extension the loader can
// decode.
func SupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".dds":
		return true
	}
	return false
}

// DecodeFile decodes path into RGBA pixels. PNG and JPEG go through the
// stdlib decoders; DDS files carry DXT-compressed blocks and take the
// dedicated path.
func DecodeFile(path string) (*image.RGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".dds") {
		return DecodeDDS(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}
