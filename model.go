package letters

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxVertices is the largest vertex count a model can hold while every
// vertex stays addressable by a 16-bit index.
const MaxVertices = 1 << 16

// Triangle holds three indices into a model's vertex list.
// Counter-clockwise order faces the camera (+Z).
type Triangle [3]uint16

// Model is an indexed triangle mesh.
//
// Models are values: every constructor and operator returns a new Model with
// its own vertex and triangle slices, so chaining never mutates or aliases
// an input:
//
//	v := letters.Rect2D[letters.Color](bar).
//	    AppendApply(letters.MirrorX).
//	    AppendTri2D(joint)
//
// A Model records the first construction error and carries it through every
// later operator, in the manner of bufio.Scanner. Check Err once the chain is
// complete.
type Model[A Attribute] struct {
	Verts []Vertex[A]
	Tris  []Triangle

	err error
}

// Empty returns a model with no vertices and no triangles.
func Empty[A Attribute]() Model[A] {
	return Model[A]{}
}

// New2D builds a model in the z=0 plane from 2D points and index triples.
// Attributes are derived from each position (white for Color, (x+0.5, y)
// for TexCoord). Triangles are copied verbatim.
func New2D[A Attribute](points []mgl32.Vec2, tris []Triangle) Model[A] {
	if len(points) > MaxVertices {
		return Model[A]{err: geometryErrorf("New2D", "%d points exceed the %d vertex limit", len(points), MaxVertices)}
	}
	for i, t := range tris {
		for _, idx := range t {
			if int(idx) >= len(points) {
				return Model[A]{err: geometryErrorf("New2D", "triangle %d index %d out of range [0,%d)", i, idx, len(points))}
			}
		}
	}

	verts := make([]Vertex[A], len(points))
	for i, p := range points {
		pos := mgl32.Vec3{p[0], p[1], 0}
		verts[i] = Vertex[A]{Position: pos, Attr: defaultAttr[A](pos)}
	}
	return Model[A]{Verts: verts, Tris: slices.Clone(tris)}
}

// Tri2D builds a single triangle. Supply the points counter-clockwise.
func Tri2D[A Attribute](p [3]mgl32.Vec2) Model[A] {
	return New2D[A](p[:], []Triangle{{0, 1, 2}})
}

// Rect2D builds a quad split along its 1-3 diagonal. Supply the corners
// counter-clockwise.
func Rect2D[A Attribute](p [4]mgl32.Vec2) Model[A] {
	return New2D[A](p[:], []Triangle{{0, 1, 3}, {1, 2, 3}})
}

// Tristrip2D builds the N-2 triangles of a zig-zag strip of N points.
// The first three points must be counter-clockwise; every odd triangle has
// its winding reversed so the whole strip faces the same way.
func Tristrip2D[A Attribute](points []mgl32.Vec2) Model[A] {
	if len(points) < 3 {
		return Model[A]{err: geometryErrorf("Tristrip2D", "need at least 3 points, got %d", len(points))}
	}
	if len(points) > MaxVertices {
		return Model[A]{err: geometryErrorf("Tristrip2D", "%d points exceed the %d vertex limit", len(points), MaxVertices)}
	}

	tris := make([]Triangle, 0, len(points)-2)
	for i := 0; i < len(points)-2; i++ {
		j := uint16(i)
		if i%2 == 1 {
			tris = append(tris, Triangle{j, j + 2, j + 1})
		} else {
			tris = append(tris, Triangle{j, j + 1, j + 2})
		}
	}
	return New2D[A](points, tris)
}

// Arc2D builds a band between two concentric arcs as a tristrip.
// Angles are in radians; from > to sweeps clockwise. The strip alternates
// inner and outer samples in whichever order keeps it front-facing.
func Arc2D[A Attribute](center mgl32.Vec2, inner, outer, from, to float32, segments int) Model[A] {
	if segments < 1 {
		return Model[A]{err: geometryErrorf("Arc2D", "need at least 1 segment, got %d", segments)}
	}
	if inner < 0 || inner >= outer {
		return Model[A]{err: geometryErrorf("Arc2D", "radii must satisfy 0 <= inner < outer, got %g, %g", inner, outer)}
	}

	points := make([]mgl32.Vec2, 0, 2*(segments+1))
	for s := 0; s <= segments; s++ {
		theta := from + (to-from)*float32(s)/float32(segments)
		sin, cos := math32.Sincos(theta)
		in := mgl32.Vec2{center[0] + inner*cos, center[1] + inner*sin}
		out := mgl32.Vec2{center[0] + outer*cos, center[1] + outer*sin}
		if to >= from {
			points = append(points, in, out)
		} else {
			points = append(points, out, in)
		}
	}
	return Tristrip2D[A](points)
}

// Err returns the first error recorded while building the model.
func (m Model[A]) Err() error {
	return m.err
}

// IsEmpty reports whether the model has nothing to draw.
// Renderers skip the draw call for empty models.
func (m Model[A]) IsEmpty() bool {
	return len(m.Tris) == 0
}

// VertexCount returns the number of vertices.
func (m Model[A]) VertexCount() int {
	return len(m.Verts)
}

// TriangleCount returns the number of triangles.
func (m Model[A]) TriangleCount() int {
	return len(m.Tris)
}

// Validate returns the recorded construction error, or checks the index
// invariants of a model assembled by hand.
func (m Model[A]) Validate() error {
	if m.err != nil {
		return m.err
	}
	if len(m.Verts) > MaxVertices {
		return geometryErrorf("Validate", "%d vertices exceed the %d vertex limit", len(m.Verts), MaxVertices)
	}
	for i, t := range m.Tris {
		for _, idx := range t {
			if int(idx) >= len(m.Verts) {
				return geometryErrorf("Validate", "triangle %d index %d out of range [0,%d)", i, idx, len(m.Verts))
			}
		}
	}
	return nil
}

func (m Model[A]) clone() Model[A] {
	return Model[A]{
		Verts: slices.Clone(m.Verts),
		Tris:  slices.Clone(m.Tris),
		err:   m.err,
	}
}

// Append returns m followed by other. Other's indices are shifted by the
// vertex count of m; vertices are never merged.
func (m Model[A]) Append(other Model[A]) Model[A] {
	if m.err != nil {
		return m.clone()
	}
	if other.err != nil {
		out := m.clone()
		out.err = other.err
		return out
	}
	total := len(m.Verts) + len(other.Verts)
	if total > MaxVertices {
		out := m.clone()
		out.err = geometryErrorf("Append", "%d vertices exceed the %d vertex limit", total, MaxVertices)
		return out
	}

	verts := make([]Vertex[A], 0, total)
	verts = append(verts, m.Verts...)
	verts = append(verts, other.Verts...)

	offset := uint16(len(m.Verts))
	tris := make([]Triangle, 0, len(m.Tris)+len(other.Tris))
	tris = append(tris, m.Tris...)
	for _, t := range other.Tris {
		tris = append(tris, Triangle{t[0] + offset, t[1] + offset, t[2] + offset})
	}
	return Model[A]{Verts: verts, Tris: tris}
}

// AppendApply appends f applied to a copy of m. It is how a symmetric half
// gets its mirror image attached:
//
//	m.AppendApply(letters.MirrorX)
func (m Model[A]) AppendApply(f func(Model[A]) Model[A]) Model[A] {
	return m.Append(f(m.clone()))
}

// AppendTri2D appends Tri2D(p).
func (m Model[A]) AppendTri2D(p [3]mgl32.Vec2) Model[A] {
	return m.Append(Tri2D[A](p))
}

// AppendRect2D appends Rect2D(p).
func (m Model[A]) AppendRect2D(p [4]mgl32.Vec2) Model[A] {
	return m.Append(Rect2D[A](p))
}

// AppendTristrip2D appends Tristrip2D(points).
func (m Model[A]) AppendTristrip2D(points []mgl32.Vec2) Model[A] {
	return m.Append(Tristrip2D[A](points))
}

// Flip reverses the winding of every triangle without touching vertices.
func (m Model[A]) Flip() Model[A] {
	out := m.clone()
	for i := range out.Tris {
		t := &out.Tris[i]
		t[1], t[2] = t[2], t[1]
	}
	return out
}

// VertOp applies f to every vertex position. Attributes pass through.
func (m Model[A]) VertOp(f func(mgl32.Vec3) mgl32.Vec3) Model[A] {
	out := m.clone()
	for i := range out.Verts {
		out.Verts[i].Position = f(out.Verts[i].Position)
	}
	return out
}

// Mult scales every position component-wise.
func (m Model[A]) Mult(x, y, z float32) Model[A] {
	return m.VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{x * p[0], y * p[1], z * p[2]}
	})
}

// Translate offsets every position.
func (m Model[A]) Translate(dx, dy, dz float32) Model[A] {
	return m.VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return p.Add(mgl32.Vec3{dx, dy, dz})
	})
}

// ResetTexCoords recomputes every TexCoord attribute from the vertex's
// current position. Call it after the last position transform.
// Color models are returned unchanged.
func (m Model[A]) ResetTexCoords() Model[A] {
	out := m.clone()
	for i := range out.Verts {
		if tc, ok := any(&out.Verts[i].Attr).(*TexCoord); ok {
			*tc = TexCoordAt(out.Verts[i].Position)
		}
	}
	return out
}

// Bounds returns the component-wise minimum and maximum vertex positions.
// Both are zero for a model without vertices.
func (m Model[A]) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Verts) == 0 {
		return lo, hi
	}
	lo, hi = m.Verts[0].Position, m.Verts[0].Position
	for _, v := range m.Verts[1:] {
		for c := 0; c < 3; c++ {
			lo[c] = min(lo[c], v.Position[c])
			hi[c] = max(hi[c], v.Position[c])
		}
	}
	return lo, hi
}

// ApproxEqual reports whether m and other have identical triangles and
// vertices whose positions and attributes agree within eps.
func (m Model[A]) ApproxEqual(other Model[A], eps float32) bool {
	if len(m.Verts) != len(other.Verts) || !slices.Equal(m.Tris, other.Tris) {
		return false
	}
	for i := range m.Verts {
		a, b := m.Verts[i], other.Verts[i]
		for c := 0; c < 3; c++ {
			if math32.Abs(a.Position[c]-b.Position[c]) > eps {
				return false
			}
		}
		fa, fb := attrFloats(a.Attr), attrFloats(b.Attr)
		for c := range fa {
			if math32.Abs(fa[c]-fb[c]) > eps {
				return false
			}
		}
	}
	return true
}
