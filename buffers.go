package letters

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// positionSize is the byte size of a Float32x3 position.
const positionSize = 12

// VertexStride returns the byte size of one encoded Vertex[A].
func VertexStride[A Attribute]() uint64 {
	return positionSize + attrFormat[A]().Size()
}

// VertexLayout returns the vertex buffer layout matching VertexBytes:
// position at @location(0), the attribute channel at @location(1).
func VertexLayout[A Attribute]() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride[A](),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			{Format: attrFormat[A](), Offset: positionSize, ShaderLocation: 1},     // color or tex coord
		},
	}
}

// IndexFormat is the index buffer format of every model.
const IndexFormat = gputypes.IndexFormatUint16

// PrimitiveState returns the primitive state glyph meshes are built for:
// triangle lists, counter-clockwise front faces, back faces culled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
}

// VertexBytes encodes the vertices as consecutive little-endian float32
// records laid out per VertexLayout.
func (m Model[A]) VertexBytes() []byte {
	stride := int(VertexStride[A]())
	buf := make([]byte, len(m.Verts)*stride)
	off := 0
	for _, v := range m.Verts {
		for _, f := range v.Position {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
		for _, f := range attrFloats(v.Attr) {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}

// IndexCount returns the number of indices to draw.
func (m Model[A]) IndexCount() uint32 {
	return uint32(len(m.Tris) * 3)
}

// IndexBytes encodes the triangles as flat little-endian uint16 triples.
// The result is zero-padded to a multiple of 4 bytes, the copy alignment
// GPU queues require; draw IndexCount indices.
func (m Model[A]) IndexBytes() []byte {
	n := len(m.Tris) * 3 * 2
	buf := make([]byte, (n+3)&^3)
	off := 0
	for _, t := range m.Tris {
		for _, idx := range t {
			binary.LittleEndian.PutUint16(buf[off:], idx)
			off += 2
		}
	}
	return buf
}

// BufferDescriptors returns descriptors sized for VertexBytes and IndexBytes.
func (m Model[A]) BufferDescriptors(label string) (vertex, index gputypes.BufferDescriptor) {
	vertex = gputypes.BufferDescriptor{
		Label: label + " vertices",
		Size:  uint64(len(m.Verts)) * VertexStride[A](),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}
	index = gputypes.BufferDescriptor{
		Label: label + " indices",
		Size:  uint64((len(m.Tris)*6 + 3) &^ 3),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	}
	return vertex, index
}
