package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNormalMatrixRigid(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(30)).Mul4(mgl32.Translate3D(1, 2, 3))

	got := NormalMatrix(view, model)
	assert.True(t, got.ApproxEqualThreshold(view.Mul4(model).Mat3(), 1e-5), "rotation is its own inverse transpose")
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	model := mgl32.Scale3D(2, 1, 1)
	got := NormalMatrix(mgl32.Ident4(), model)

	n := got.Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0.5, n[0], 1e-6)
	assert.InDelta(t, 1, n[1], 1e-6)
}

func TestNormalMatrixSingular(t *testing.T) {
	model := mgl32.Scale3D(1, 0, 1)
	got := NormalMatrix(mgl32.Ident4(), model)
	assert.Equal(t, model.Mat3(), got)
}
