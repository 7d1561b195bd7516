package letters

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Color is a linear RGB vertex color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// White is the default vertex color.
var White = Color{R: 1, G: 1, B: 1}

// TexCoord is a texture coordinate pair.
type TexCoord struct {
	U, V float32
}

// TexCoordAt returns the texture coordinate assigned to a glyph position.
// Glyphs live in x∈[-0.5, 0.5], y∈[0, 1], which maps onto [0, 1]².
func TexCoordAt(p mgl32.Vec3) TexCoord {
	return TexCoord{U: p[0] + 0.5, V: p[1]}
}

// Attribute is the set of auxiliary per-vertex channels a model can carry.
type Attribute interface {
	Color | TexCoord
}

// Vertex is a model-space position plus one auxiliary attribute.
type Vertex[A Attribute] struct {
	Position mgl32.Vec3
	Attr     A
}

// defaultAttr returns the attribute a freshly built vertex gets at p.
func defaultAttr[A Attribute](p mgl32.Vec3) A {
	var a A
	switch v := any(&a).(type) {
	case *Color:
		*v = White
	case *TexCoord:
		*v = TexCoordAt(p)
	}
	return a
}

// attrFormat returns the GPU vertex format of the attribute channel.
func attrFormat[A Attribute]() gputypes.VertexFormat {
	var a A
	switch any(a).(type) {
	case Color:
		return gputypes.VertexFormatFloat32x3
	default:
		return gputypes.VertexFormatFloat32x2
	}
}

// attrFloats returns the attribute as a flat float slice in buffer order.
func attrFloats[A Attribute](a A) []float32 {
	switch v := any(a).(type) {
	case Color:
		return []float32{v.R, v.G, v.B}
	case TexCoord:
		return []float32{v.U, v.V}
	}
	return nil
}
