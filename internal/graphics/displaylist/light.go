package displaylist

import "github.com/go-gl/mathgl/mgl32"

// MaxLights is the number of light slots, as in the fixed-function pipeline.
const MaxLights = 8

// NoSpot is the cutoff that turns a light into a point light.
const NoSpot = 180

// Light is one light slot. Position and SpotDirection are stored in eye
// space once the light has been placed through a List.
type Light struct {
	Enabled bool

	Position mgl32.Vec4
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4

	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32

	SpotCutoff    float32
	SpotExponent  float32
	SpotDirection mgl32.Vec3
}

// PointLight returns an enabled light at position with the fixed-function defaults otherwise.
func PointLight(position mgl32.Vec4) Light {
	return Light{
		Enabled:             true,
		Position:            position,
		Ambient:             mgl32.Vec4{0, 0, 0, 1},
		Diffuse:             mgl32.Vec4{1, 1, 1, 1},
		Specular:            mgl32.Vec4{1, 1, 1, 1},
		ConstantAttenuation: 1,
		SpotCutoff:          NoSpot,
		SpotDirection:       mgl32.Vec3{0, 0, -1},
	}
}

// Spot turns l into a spotlight, or back into a point light when on is false.
func (l Light) Spot(on bool, cutoff, exponent float32, direction mgl32.Vec3) Light {
	if !on {
		l.SpotCutoff = NoSpot
		l.SpotExponent = 0
		return l
	}
	l.SpotCutoff = cutoff
	l.SpotExponent = exponent
	l.SpotDirection = direction
	return l
}

// IsSpot reports whether the light has a cone.
func (l Light) IsSpot() bool { return l.SpotCutoff < NoSpot }

// Scaled multiplies the light colors by k, keeping alpha.
func (l Light) Scaled(k float32) Light {
	l.Ambient = scaleRGB(l.Ambient, k)
	l.Diffuse = scaleRGB(l.Diffuse, k)
	l.Specular = scaleRGB(l.Specular, k)
	return l
}

func scaleRGB(c mgl32.Vec4, k float32) mgl32.Vec4 {
	return mgl32.Vec4{c[0] * k, c[1] * k, c[2] * k, c[3]}
}
