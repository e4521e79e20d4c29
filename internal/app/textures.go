package app

import (
	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/graphics"
	"glscenes/internal/imaging"
)

// ProceduralSize is the side of generated brick and wood images.
const ProceduralSize = 256

// LoadTextures uploads the checkerboard and the brick and wood images.
func LoadTextures(s config.Settings, store *graphics.TextureStore) (demo.Textures, error) {
	var tex demo.Textures
	n := s.Textures.CheckerSize
	tex.Checker = store.Image("checkerboard", imaging.Checkerboard(n, n))

	brick, wood := fallbacks(s.Textures.ProceduralFallback)
	var err error
	if tex.Brick, err = store.File(s.AssetPath(s.Textures.Brick), brick, ProceduralSize); err != nil {
		return tex, err
	}
	if tex.Wood, err = store.File(s.AssetPath(s.Textures.Wood), wood, ProceduralSize); err != nil {
		return tex, err
	}
	return tex, nil
}

func fallbacks(enabled bool) (brick, wood graphics.Generator) {
	if !enabled {
		return nil, nil
	}
	return imaging.Bricks, imaging.Wood
}
