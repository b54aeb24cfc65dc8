package assets

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"

	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

// cacheMagic versions the cache entry layout; bump it to invalidate every
// stale entry at once.
const cacheMagic = "MTRC0001"

// Cache stores decoded RGBA pixels as lz4 blocks keyed by source path and
// mtime, so re-opening a large photo set skips the JPEG/DXT decode cost.
// Entries are derived data only; deleting the directory is always safe.
type Cache struct {
	dir string
}

// NewCache roots a cache under dir, creating it as needed. Returns nil
// (cache disabled) when the directory cannot be created.
func NewCache(dir string) *Cache {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.Warn("Texture cache disabled: %v", err)
		return nil
	}
	return &Cache{dir: dir}
}

func (c *Cache) entryPath(src string) string {
	key := src
	if st, err := os.Stat(src); err == nil {
		key = fmt.Sprintf("%s|%d|%d", src, st.Size(), st.ModTime().UnixNano())
	}
	sum := sha1.Sum([]byte(key))
	return filepath.Join(c.dir, fmt.Sprintf("%x.rgba.lz4", sum))
}

// Get returns the cached pixels for src, if present and intact.
func (c *Cache) Get(src string) (*image.RGBA, bool) {
	data, err := os.ReadFile(c.entryPath(src))
	if err != nil {
		return nil, false
	}

	r := bytes.NewReader(data)
	magic := make([]byte, len(cacheMagic))
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != cacheMagic {
		return nil, false
	}

	var w, h, rawSize uint32
	for _, v := range []*uint32{&w, &h, &rawSize} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, false
		}
	}
	if rawSize != w*h*4 || rawSize == 0 {
		return nil, false
	}

	compressed := make([]byte, r.Len())
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, false
	}

	pix := make([]byte, rawSize)
	if n, err := lz4.UncompressBlock(compressed, pix); err != nil || uint32(n) != rawSize {
		utils.Debug("Cache entry for %s is corrupt, ignoring", src)
		return nil, false
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(w) * 4,
		Rect:   image.Rect(0, 0, int(w), int(h)),
	}, true
}

// Put stores img under src's cache key. Failures only cost the speedup.
func (c *Cache) Put(src string, img *image.RGBA) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || img.Stride != w*4 {
		return
	}

	var compressor lz4.Compressor
	compressed := make([]byte, lz4.CompressBlockBound(len(img.Pix)))
	n, err := compressor.CompressBlock(img.Pix, compressed)
	if err != nil || n == 0 {
		// Incompressible input; not worth storing raw.
		return
	}

	var buf bytes.Buffer
	buf.WriteString(cacheMagic)
	for _, v := range []uint32{uint32(w), uint32(h), uint32(len(img.Pix))} {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.Write(compressed[:n])

	path := c.entryPath(src)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		utils.Debug("Cache write failed for %s: %v", src, err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
	}
}
