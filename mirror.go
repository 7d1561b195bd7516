package letters

import "github.com/go-gl/mathgl/mgl32"

// Every reflection below negates one axis of the plane, which reverses
// triangle winding. Each one flips first so the mirrored half still faces +Z.

// MirrorX reflects m across the Y axis (x → -x).
func MirrorX[A Attribute](m Model[A]) Model[A] {
	return m.Flip().Mult(-1, 1, 1)
}

// MirrorY reflects m across the glyph mid-line y = 0.5, keeping the [0, 1]
// height range.
func MirrorY[A Attribute](m Model[A]) Model[A] {
	return m.Flip().VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{p[0], 1 - p[1], p[2]}
	})
}

// MirrorForwardSlash reflects m across the line y = x + 0.5, the "/"
// diagonal through (0, 0.5).
func MirrorForwardSlash[A Attribute](m Model[A]) Model[A] {
	return m.Flip().VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{p[1] - 0.5, p[0] + 0.5, p[2]}
	})
}

// MirrorBackSlash reflects m across the line y = 0.5 - x, the "\"
// diagonal through (0, 0.5).
func MirrorBackSlash[A Attribute](m Model[A]) Model[A] {
	return m.Flip().VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{0.5 - p[1], 0.5 - p[0], p[2]}
	})
}

// Recolor paints every vertex of a color model with c.
func Recolor(m Model[Color], c Color) Model[Color] {
	out := m.clone()
	for i := range out.Verts {
		out.Verts[i].Attr = c
	}
	return out
}
