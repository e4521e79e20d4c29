package displaylist

import "github.com/go-gl/mathgl/mgl32"

// Material holds fixed-function style surface reflectance.
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Emission  mgl32.Vec4
	Shininess float32
}

// DefaultMaterial matches the fixed-function pipeline's initial material.
var DefaultMaterial = Material{
	Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
	Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
	Specular: mgl32.Vec4{0, 0, 0, 1},
	Emission: mgl32.Vec4{0, 0, 0, 1},
}

var Copper = Material{
	Ambient:   mgl32.Vec4{0.19125, 0.0735, 0.0225, 1},
	Diffuse:   mgl32.Vec4{0.7038, 0.27048, 0.0828, 1},
	Specular:  mgl32.Vec4{0.256777, 0.137622, 0.086014, 1},
	Emission:  mgl32.Vec4{0, 0, 0, 1},
	Shininess: 128,
}

var Silver = Material{
	Ambient:   mgl32.Vec4{0.19225, 0.19225, 0.19225, 1},
	Diffuse:   mgl32.Vec4{0.50754, 0.50754, 0.50754, 1},
	Specular:  mgl32.Vec4{0.508273, 0.508273, 0.508273, 1},
	Emission:  mgl32.Vec4{0, 0, 0, 1},
	Shininess: 10,
}

var Pewter = Material{
	Ambient:   mgl32.Vec4{0.10588, 0.058824, 0.113725, 1},
	Diffuse:   mgl32.Vec4{0.427451, 0.470588, 0.541176, 1},
	Specular:  mgl32.Vec4{0.3333, 0.3333, 0.521569, 1},
	Emission:  mgl32.Vec4{0, 0, 0, 1},
	Shininess: 9.84615,
}
