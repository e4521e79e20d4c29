package graphics

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"sync"

	"glscenes/internal/imaging"
)

// Generator synthesizes a texture image when its file is missing.
type Generator func(size int) *image.RGBA

// TextureStore uploads textures once and caches them by key.
type TextureStore struct {
	mu      sync.RWMutex
	cache   map[string]uint32
	maxSize int
}

// NewTextureStore creates a store that resizes images down to at most maxSize pixels per side.
func NewTextureStore(maxSize int) *TextureStore {
	return &TextureStore{cache: make(map[string]uint32), maxSize: maxSize}
}

func (s *TextureStore) lookup(key string) (uint32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tex, ok := s.cache[key]
	return tex, ok
}

func (s *TextureStore) remember(key string, tex uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = tex
}

// Image uploads a generated img under key, or returns the texture already
// stored there. Rows are taken bottom-up as they are.
func (s *TextureStore) Image(key string, img image.Image) uint32 {
	if tex, ok := s.lookup(key); ok {
		return tex
	}
	tex := UploadTexture(imaging.Generated(img, s.maxSize))
	s.remember(key, tex)
	return tex
}

// File loads the image at path. When the file does not exist and fallback is
// non-nil, the generated image is used instead and a warning is logged.
func (s *TextureStore) File(path string, fallback Generator, size int) (uint32, error) {
	if tex, ok := s.lookup(path); ok {
		return tex, nil
	}

	var pixels *image.RGBA
	img, err := imaging.Load(path)
	if err != nil {
		if fallback == nil || !errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("texture %s: %w", path, err)
		}
		slog.Warn("texture missing, using a generated one", "path", path)
		pixels = imaging.Generated(fallback(size), s.maxSize)
	} else {
		slog.Debug("texture loaded", "path", path, "size", img.Bounds().Size())
		pixels = imaging.Prepare(img, s.maxSize)
	}

	tex := UploadTexture(pixels)
	s.remember(path, tex)
	return tex, nil
}

// Len returns the number of cached textures.
func (s *TextureStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// Dispose deletes every texture.
func (s *TextureStore) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, tex := range s.cache {
		DeleteTexture(tex)
		delete(s.cache, key)
	}
}
