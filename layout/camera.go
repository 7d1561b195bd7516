package layout

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// glToWebGPU remaps OpenGL clip depth [-1, 1] to the [0, 1] range WebGPU
// clips against.
var glToWebGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a right-handed perspective camera.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
	Aspect          float32
	FovY            float32 // degrees
	ZNear, ZFar     float32
}

// DefaultCamera looks at the origin from slightly above and in front of it,
// with a 45° vertical field of view.
func DefaultCamera(aspect float32) Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: aspect,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
}

// ViewProjection returns the world-to-clip matrix with WebGPU depth range.
func (c Camera) ViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.ZNear, c.ZFar)
	return glToWebGPU.Mul4(proj).Mul4(view)
}

// UniformBytes encodes ViewProjection as a 64-byte uniform block.
func (c Camera) UniformBytes() []byte {
	m := c.ViewProjection()
	buf := make([]byte, 64)
	for i, f := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
