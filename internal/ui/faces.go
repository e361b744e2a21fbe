package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Memory-Match/internal/assets"
)

// FaceCache turns face keys into card-sized images, loading each once.
// Faces that fail to load are remembered and drawn as palette colours.
type FaceCache struct {
	size   int
	log    zerolog.Logger
	images map[string]*ebiten.Image
}

// NewFaceCache creates an empty cache for cards of the given pixel size.
func NewFaceCache(size int, log zerolog.Logger) *FaceCache {
	return &FaceCache{
		size:   size,
		log:    log,
		images: map[string]*ebiten.Image{},
	}
}

// Get returns the image for face, or nil for blank or unloadable faces.
func (fc *FaceCache) Get(face string) *ebiten.Image {
	if face == "" {
		return nil
	}
	if img, ok := fc.images[face]; ok {
		return img
	}
	src, err := assets.LoadFace(face, fc.size)
	if err != nil {
		fc.log.Warn().Err(err).Str("face", face).Msg("face image unavailable, using colour")
		fc.images[face] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	fc.images[face] = img
	return img
}
