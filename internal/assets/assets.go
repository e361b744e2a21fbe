// Package assets discovers face images on disk and decodes them at card size.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// Provider supplies the ordered face pool for dealing.
type Provider interface {
	Faces() ([]string, error)
}

// DirProvider finds every file under Root whose name ends in Suffix.
type DirProvider struct {
	Root   string
	Suffix string
}

// Faces walks Root and returns matching file paths in lexical order. A
// missing root yields an empty pool; the deck then falls back to blank faces.
func (p DirProvider) Faces() ([]string, error) {
	if p.Root == "" {
		return nil, nil
	}
	var faces []string
	err := filepath.WalkDir(p.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == p.Root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), p.Suffix) {
			faces = append(faces, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", p.Root, err)
	}
	sort.Strings(faces)
	return faces, nil
}

// LoadFace decodes the image at path and scales it to size×size.
func LoadFace(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open face: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Scale(src, size), nil
}

// Scale resamples src into a size×size RGBA image.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
