package layout

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// InstanceStride is the byte size of one encoded model matrix.
const InstanceStride = 64

// InstanceLayout describes the per-instance buffer written by InstanceBytes:
// the four matrix columns as Float32x4 at locations 5 through 8.
func InstanceLayout() gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 4)
	for c := range attrs {
		attrs[c] = gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x4,
			Offset:         uint64(c * 16),
			ShaderLocation: uint32(5 + c),
		}
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: InstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes:  attrs,
	}
}

// InstanceBytes encodes each instance's Mat4 column-major as little-endian
// float32.
func InstanceBytes(instances []Instance) []byte {
	buf := make([]byte, len(instances)*InstanceStride)
	off := 0
	for _, in := range instances {
		for _, f := range in.Mat4() {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}
