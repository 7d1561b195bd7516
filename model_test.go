package letters

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// signedArea returns twice the signed area of triangle t; positive means
// counter-clockwise.
func signedArea[A Attribute](m Model[A], t Triangle) float32 {
	a, b, c := m.Verts[t[0]].Position, m.Verts[t[1]].Position, m.Verts[t[2]].Position
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func assertFrontFacing[A Attribute](t *testing.T, name string, m Model[A]) {
	t.Helper()
	for i, tri := range m.Tris {
		if area := signedArea(m, tri); area <= 0 {
			t.Errorf("%s: triangle %d %v is not counter-clockwise (area %g)", name, i, tri, area)
		}
	}
}

var unitSquare = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestTri2D(t *testing.T) {
	m := Tri2D[Color]([3]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}})

	want := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if len(m.Verts) != len(want) {
		t.Fatalf("len(Verts) = %d, want %d", len(m.Verts), len(want))
	}
	for i, v := range m.Verts {
		if v.Position != want[i] {
			t.Errorf("Verts[%d].Position = %v, want %v", i, v.Position, want[i])
		}
		if v.Attr != White {
			t.Errorf("Verts[%d].Attr = %v, want white", i, v.Attr)
		}
	}
	if !slices.Equal(m.Tris, []Triangle{{0, 1, 2}}) {
		t.Errorf("Tris = %v, want [[0 1 2]]", m.Tris)
	}
	if err := m.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestTri2D_TexCoords(t *testing.T) {
	m := Tri2D[TexCoord]([3]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}})

	want := []TexCoord{{0.5, 0}, {1.5, 0}, {0.5, 1}}
	for i, v := range m.Verts {
		if v.Attr != want[i] {
			t.Errorf("Verts[%d].Attr = %v, want %v", i, v.Attr, want[i])
		}
	}
}

func TestRect2D(t *testing.T) {
	m := Rect2D[Color](unitSquare)

	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d triangles; want 4, 2", m.VertexCount(), m.TriangleCount())
	}
	assertFrontFacing(t, "rect", m)

	// Each quad edge belongs to exactly one triangle; the diagonal to both.
	type edge struct{ a, b uint16 }
	norm := func(a, b uint16) edge {
		if a > b {
			a, b = b, a
		}
		return edge{a, b}
	}
	counts := map[edge]int{}
	for _, tri := range m.Tris {
		counts[norm(tri[0], tri[1])]++
		counts[norm(tri[1], tri[2])]++
		counts[norm(tri[2], tri[0])]++
	}
	for _, e := range []edge{{0, 1}, {1, 2}, {2, 3}, {0, 3}} {
		if counts[e] != 1 {
			t.Errorf("quad edge %v used %d times, want 1", e, counts[e])
		}
	}
	if counts[edge{1, 3}] != 2 {
		t.Errorf("diagonal used %d times, want 2", counts[edge{1, 3}])
	}
	if len(counts) != 5 {
		t.Errorf("found %d distinct edges, want 5", len(counts))
	}
}

// zigzag returns n points alternating between y=1 and y=0, starting with a
// counter-clockwise triple.
func zigzag(n int) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		y := float32(1)
		if i%2 == 1 {
			y = 0
		}
		pts[i] = mgl32.Vec2{float32(i) / 2, y}
	}
	return pts
}

func TestTristrip2D(t *testing.T) {
	for n := 3; n <= 9; n++ {
		m := Tristrip2D[Color](zigzag(n))
		if err := m.Err(); err != nil {
			t.Fatalf("n=%d: Err() = %v", n, err)
		}
		if m.TriangleCount() != n-2 {
			t.Errorf("n=%d: %d triangles, want %d", n, m.TriangleCount(), n-2)
		}
		for i, tri := range m.Tris {
			j := uint16(i)
			want := Triangle{j, j + 1, j + 2}
			if i%2 == 1 {
				want = Triangle{j, j + 2, j + 1}
			}
			if tri != want {
				t.Errorf("n=%d: triangle %d = %v, want %v", n, i, tri, want)
			}
		}
		assertFrontFacing(t, "strip", m)
	}
}

func TestTristrip2D_TooFewPoints(t *testing.T) {
	for n := 0; n < 3; n++ {
		m := Tristrip2D[Color](zigzag(n))
		if !errors.Is(m.Err(), ErrInvalidGeometry) {
			t.Errorf("n=%d: Err() = %v, want ErrInvalidGeometry", n, m.Err())
		}
	}
}

func TestNew2D_IndexOutOfRange(t *testing.T) {
	m := New2D[Color]([]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}, []Triangle{{0, 1, 3}})

	err := m.Err()
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("Err() = %v, want ErrInvalidGeometry", err)
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("Err() = %T, want *GeometryError", err)
	}
	if gerr.Op != "New2D" {
		t.Errorf("Op = %q, want New2D", gerr.Op)
	}
}

func TestEmpty(t *testing.T) {
	m := Empty[TexCoord]()
	if !m.IsEmpty() || m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Errorf("Empty() = %+v, want no vertices or triangles", m)
	}
	if len(m.VertexBytes()) != 0 || len(m.IndexBytes()) != 0 {
		t.Error("empty model should encode to empty buffers")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAppend(t *testing.T) {
	a := Rect2D[Color](unitSquare)
	b := Tri2D[Color]([3]mgl32.Vec2{{2, 0}, {3, 0}, {2, 1}})

	got := a.Append(b)

	if got.VertexCount() != a.VertexCount()+b.VertexCount() {
		t.Errorf("VertexCount() = %d, want %d", got.VertexCount(), a.VertexCount()+b.VertexCount())
	}
	want := []Triangle{{0, 1, 3}, {1, 2, 3}, {4, 5, 6}}
	if !slices.Equal(got.Tris, want) {
		t.Errorf("Tris = %v, want %v", got.Tris, want)
	}
	if got.Verts[4].Position != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("Verts[4] = %v, want first vertex of b", got.Verts[4].Position)
	}
}

func TestAppend_DoesNotAlias(t *testing.T) {
	a := Rect2D[Color](unitSquare)
	b := Rect2D[Color](unitSquare)

	got := a.Append(b)
	got.Verts[0].Position[0] = 42
	got.Tris[0][0] = 3

	if a.Verts[0].Position[0] != 0 {
		t.Error("Append result shares vertex storage with its receiver")
	}
	if a.Tris[0][0] != 0 {
		t.Error("Append result shares triangle storage with its receiver")
	}

	flipped := a.Flip()
	flipped.Tris[0][0] = 3
	if a.Tris[0][0] != 0 {
		t.Error("Flip result shares triangle storage with its receiver")
	}
}

func TestAppend_PropagatesError(t *testing.T) {
	bad := Tristrip2D[Color](nil)
	good := Rect2D[Color](unitSquare)

	if err := good.Append(bad).Err(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("good.Append(bad).Err() = %v, want ErrInvalidGeometry", err)
	}
	if err := bad.Append(good).Flip().Mult(2, 2, 2).Err(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("error lost along the chain: %v", err)
	}
}

func TestAppend_VertexLimit(t *testing.T) {
	big := New2D[Color](make([]mgl32.Vec2, MaxVertices/2+1), nil)
	if err := big.Err(); err != nil {
		t.Fatalf("New2D() = %v", err)
	}

	if err := big.Append(big).Err(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Err() = %v, want ErrInvalidGeometry", err)
	}
}

func TestAppendApply_MirrorX(t *testing.T) {
	m := Rect2D[Color](unitSquare).AppendApply(MirrorX)

	if m.VertexCount() != 8 || m.TriangleCount() != 4 {
		t.Fatalf("got %d vertices, %d triangles; want 8, 4", m.VertexCount(), m.TriangleCount())
	}
	for i := 0; i < 4; i++ {
		first, second := m.Verts[i].Position, m.Verts[i+4].Position
		if second[0] != -first[0] || second[1] != first[1] {
			t.Errorf("vertex %d = %v, want mirror of %v", i+4, second, first)
		}
	}
	assertFrontFacing(t, "mirrored rect", m)
}

func TestFlip_Involution(t *testing.T) {
	m := Tristrip2D[Color](zigzag(6))

	if !m.Flip().Flip().ApproxEqual(m, 0) {
		t.Error("Flip().Flip() differs from the original")
	}
	for i, tri := range m.Flip().Tris {
		if tri[0] != m.Tris[i][0] || tri[1] != m.Tris[i][2] || tri[2] != m.Tris[i][1] {
			t.Errorf("Flip() triangle %d = %v, want %v with indices 1 and 2 swapped", i, tri, m.Tris[i])
		}
	}
}

func TestVertOp_PreservesAttributes(t *testing.T) {
	m := Rect2D[TexCoord](unitSquare)
	scaled := m.Mult(2, 3, 1).Translate(0.5, 0, 0)

	for i, v := range scaled.Verts {
		if v.Attr != m.Verts[i].Attr {
			t.Errorf("Verts[%d].Attr = %v, want %v", i, v.Attr, m.Verts[i].Attr)
		}
	}
	if got := scaled.Verts[2].Position; got != (mgl32.Vec3{2.5, 3, 0}) {
		t.Errorf("Verts[2].Position = %v, want (2.5, 3, 0)", got)
	}

	reset := scaled.ResetTexCoords()
	if got := reset.Verts[2].Attr; got != (TexCoord{3, 3}) {
		t.Errorf("ResetTexCoords() Verts[2].Attr = %v, want (3, 3)", got)
	}
}

func TestResetTexCoords_ColorUnchanged(t *testing.T) {
	m := Recolor(Rect2D[Color](unitSquare), Color{R: 1})
	got := m.Mult(2, 2, 2).ResetTexCoords()
	for i, v := range got.Verts {
		if v.Attr != (Color{R: 1}) {
			t.Errorf("Verts[%d].Attr = %v, want red", i, v.Attr)
		}
	}
}

func TestArc2D(t *testing.T) {
	tests := []struct {
		name     string
		from, to float32
	}{
		{"counter-clockwise", 0, 3},
		{"clockwise", 0, -3},
		{"full turn", 0, 6.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Arc2D[Color](mgl32.Vec2{0, 0.5}, 0.2, 0.5, tt.from, tt.to, 10)
			if err := m.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if m.VertexCount() != 22 || m.TriangleCount() != 20 {
				t.Errorf("got %d vertices, %d triangles; want 22, 20", m.VertexCount(), m.TriangleCount())
			}
			assertFrontFacing(t, tt.name, m)
		})
	}
}

func TestArc2D_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		inner, outer float32
		segments     int
	}{
		{"no segments", 0.1, 0.2, 0},
		{"inverted radii", 0.3, 0.2, 4},
		{"negative inner", -0.1, 0.2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Arc2D[Color](mgl32.Vec2{}, tt.inner, tt.outer, 0, 1, tt.segments)
			if !errors.Is(m.Err(), ErrInvalidGeometry) {
				t.Errorf("Err() = %v, want ErrInvalidGeometry", m.Err())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	m := Model[Color]{
		Verts: make([]Vertex[Color], 3),
		Tris:  []Triangle{{0, 1, 2}, {2, 1, 5}},
	}
	if err := m.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Validate() = %v, want ErrInvalidGeometry", err)
	}

	m.Tris = m.Tris[:1]
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBounds(t *testing.T) {
	m := Rect2D[Color](unitSquare).Translate(-0.5, 0, 1)
	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{-0.5, 0, 1}) || hi != (mgl32.Vec3{0.5, 1, 1}) {
		t.Errorf("Bounds() = %v, %v; want (-0.5,0,1), (0.5,1,1)", lo, hi)
	}

	lo, hi = Empty[Color]().Bounds()
	if lo != (mgl32.Vec3{}) || hi != (mgl32.Vec3{}) {
		t.Errorf("empty Bounds() = %v, %v; want zero", lo, hi)
	}
}
