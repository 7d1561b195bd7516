package letters

import (
	"fmt"
	"unicode"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LetterCount is the number of glyphs in an Alphabet.
const LetterCount = 26

// Alphabet holds one model per letter, index 0 = 'A' through 25 = 'Z'.
type Alphabet[A Attribute] [LetterCount]Model[A]

// Letter returns the model for an ASCII letter of either case.
func (a *Alphabet[A]) Letter(r rune) (Model[A], bool) {
	i, ok := LetterIndex(r)
	if !ok {
		return Model[A]{}, false
	}
	return a[i], true
}

// LetterIndex maps an ASCII letter of either case to its alphabet index.
func LetterIndex(r rune) (int, bool) {
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return 0, false
	}
	return int(unicode.ToUpper(r) - 'A'), true
}

// CreateAlphabet builds the 26 glyph meshes.
//
// Every glyph sits in the box x∈[-0.5, 0.5], y∈[0, 1] (W and M overhang
// slightly), is front-facing along +Z and, for TexCoord models, has its
// texture coordinates reset from its final geometry.
func CreateAlphabet[A Attribute]() (Alphabet[A], error) {
	const pi = math32.Pi

	v := Rect2D[A]([4]mgl32.Vec2{ // diagonal of V
		{0.3, 0.9},
		{0.0, 0.15},
		{0.1, 0.0},
		{0.5, 0.9},
	}).AppendApply(MirrorX).AppendTri2D([3]mgl32.Vec2{ // joins the two diagonals
		{0.0, 0.15},
		{-0.1, 0.0},
		{0.1, 0.0},
	})

	a := MirrorY(v).AppendRect2D([4]mgl32.Vec2{ // center bar
		{0.25, 0.45},
		{0.2, 0.6},
		{-0.2, 0.6},
		{-0.25, 0.45},
	})

	stem := Rect2D[A]([4]mgl32.Vec2{ // left vertical shared by B D E F K L P R
		{-0.5, 0.0},
		{-0.2, 0.0},
		{-0.2, 1.0},
		{-0.5, 1.0},
	})

	// Bowl of D: two short bars closed by a half annulus.
	bowl := Rect2D[A]([4]mgl32.Vec2{
		{-0.2, 0.0},
		{0.0, 0.0},
		{0.0, 0.2},
		{-0.2, 0.2},
	}).AppendApply(MirrorY).Append(Arc2D[A](mgl32.Vec2{0, 0.5}, 0.3, 0.5, -pi/2, pi/2, 8))

	d := stem.Append(bowl)

	b := d.VertOp(func(p mgl32.Vec3) mgl32.Vec3 { // B is two D's
		return mgl32.Vec3{p[0], p[1]*0.5 + 0.5, p[2]}
	}).Append(d.VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{p[0], p[1] * 0.5, p[2]}
	}))

	c := Arc2D[A](mgl32.Vec2{0, 0.5}, 0.3, 0.5, pi/4, 7*pi/4, 12)

	flange := Rect2D[A]([4]mgl32.Vec2{ // bottom flange of E and L
		{-0.2, 0.0},
		{0.5, 0.0},
		{0.5, 0.2},
		{-0.2, 0.2},
	})
	middle := Rect2D[A]([4]mgl32.Vec2{ // middle flange of E and F
		{-0.2, 0.4},
		{0.5, 0.4},
		{0.5, 0.6},
		{-0.2, 0.6},
	})

	e := flange.AppendApply(MirrorY).Append(stem).Append(middle)

	f := MirrorY(flange).Append(stem).Append(middle)

	g := Arc2D[A](mgl32.Vec2{0, 0.5}, 0.3, 0.5, pi/4, 2*pi, 14).AppendRect2D([4]mgl32.Vec2{ // spur
		{0.0, 0.4},
		{0.5, 0.4},
		{0.5, 0.55},
		{0.0, 0.55},
	})

	h := Rect2D[A]([4]mgl32.Vec2{ // vertical of H
		{0.5, 0.0},
		{0.5, 1.0},
		{0.2, 1.0},
		{0.2, 0.0},
	}).AppendApply(MirrorX).AppendRect2D([4]mgl32.Vec2{ // horizontal of H
		{-0.4, 0.4},
		{0.4, 0.4},
		{0.4, 0.6},
		{-0.4, 0.6},
	})

	i := Rect2D[A]([4]mgl32.Vec2{ // serifs
		{-0.4, 0.0},
		{0.4, 0.0},
		{0.4, 0.2},
		{-0.4, 0.2},
	}).AppendApply(MirrorY).AppendRect2D([4]mgl32.Vec2{
		{-0.15, 0.2},
		{0.15, 0.2},
		{0.15, 0.8},
		{-0.15, 0.8},
	})

	j := Rect2D[A]([4]mgl32.Vec2{
		{0.2, 0.45},
		{0.5, 0.45},
		{0.5, 1.0},
		{0.2, 1.0},
	}).Append(Arc2D[A](mgl32.Vec2{0.05, 0.45}, 0.15, 0.45, 0, -pi, 10))

	arm := Rect2D[A]([4]mgl32.Vec2{ // upper arm of K, mirrored into the leg
		{-0.2, 0.3},
		{0.1, 0.3},
		{0.5, 1.0},
		{0.2, 1.0},
	})
	k := stem.Append(arm.AppendApply(MirrorY))

	l := flange.Append(stem)

	// Both stems of N are the same top bar folded onto each side.
	top := Rect2D[A]([4]mgl32.Vec2{
		{-0.5, 0.7},
		{0.5, 0.7},
		{0.5, 1.0},
		{-0.5, 1.0},
	})
	n := MirrorForwardSlash(top).Append(MirrorBackSlash(top)).AppendRect2D([4]mgl32.Vec2{
		{-0.2, 0.7},
		{0.2, 0.0},
		{0.2, 0.3},
		{-0.2, 1.0},
	})

	o := Rect2D[A]([4]mgl32.Vec2{ // diagonal part of O
		{0.25, 0.0},
		{0.5, 0.25},
		{0.3, 0.35},
		{0.15, 0.2},
	}).AppendApply(MirrorY).AppendRect2D([4]mgl32.Vec2{ // vertical part of O
		{0.3, 0.35},
		{0.5, 0.25},
		{0.5, 0.75},
		{0.3, 0.65},
	}).AppendApply(MirrorX).Append(
		Rect2D[A]([4]mgl32.Vec2{ // horizontal part of O
			{-0.25, 0.0},
			{0.25, 0.0},
			{0.15, 0.2},
			{-0.15, 0.2},
		}).AppendApply(MirrorY),
	)

	p := stem.Append(bowl.VertOp(func(p mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{p[0], p[1]*0.55 + 0.45, p[2]}
	}))

	q := o.AppendRect2D([4]mgl32.Vec2{ // tail
		{0.05, 0.25},
		{0.3, 0.0},
		{0.45, 0.1},
		{0.2, 0.35},
	})

	r := p.AppendRect2D([4]mgl32.Vec2{ // leg
		{0.2, 0.0},
		{0.5, 0.0},
		{0.1, 0.45},
		{-0.2, 0.45},
	})

	// S is its upper hook plus the same hook turned half a revolution,
	// widened to the full glyph box.
	s := Arc2D[A](mgl32.Vec2{0, 0.75}, 0.15, 0.25, pi/6, 3*pi/2, 10).AppendApply(func(m Model[A]) Model[A] {
		return MirrorY(MirrorX(m))
	}).Mult(2, 1, 1)

	t := Rect2D[A]([4]mgl32.Vec2{
		{-0.5, 0.8},
		{0.5, 0.8},
		{0.5, 1.0},
		{-0.5, 1.0},
	}).AppendRect2D([4]mgl32.Vec2{
		{-0.15, 0.0},
		{0.15, 0.0},
		{0.15, 0.8},
		{-0.15, 0.8},
	})

	u := Rect2D[A]([4]mgl32.Vec2{
		{0.2, 0.5},
		{0.5, 0.5},
		{0.5, 1.0},
		{0.2, 1.0},
	}).AppendApply(MirrorX).Append(Arc2D[A](mgl32.Vec2{0, 0.5}, 0.2, 0.5, 0, -pi, 12))

	w := v.VertOp(func(p mgl32.Vec3) mgl32.Vec3 { // narrowed V shifted right
		return mgl32.Vec3{p[0]*0.6 + 0.25, p[1], p[2]}
	}).AppendApply(MirrorX)

	x := Rect2D[A]([4]mgl32.Vec2{
		{-0.5, 0.0},
		{-0.2, 0.0},
		{0.5, 1.0},
		{0.2, 1.0},
	}).AppendApply(MirrorX)

	y := Rect2D[A]([4]mgl32.Vec2{ // right arm
		{-0.15, 0.45},
		{0.15, 0.45},
		{0.5, 1.0},
		{0.2, 1.0},
	}).AppendApply(MirrorX).AppendRect2D([4]mgl32.Vec2{
		{-0.15, 0.0},
		{0.15, 0.0},
		{0.15, 0.45},
		{-0.15, 0.45},
	})

	z := Rect2D[A]([4]mgl32.Vec2{
		{-0.5, 0.8},
		{0.5, 0.8},
		{0.5, 1.0},
		{-0.5, 1.0},
	}).AppendApply(MirrorY).AppendRect2D([4]mgl32.Vec2{
		{-0.5, 0.2},
		{-0.2, 0.2},
		{0.5, 0.8},
		{0.2, 0.8},
	})

	m := MirrorY(w) // upside-down W

	alphabet := Alphabet[A]{a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t, u, v, w, x, y, z}

	log := Logger()
	verts, tris := 0, 0
	for idx := range alphabet {
		glyph := alphabet[idx]
		if err := glyph.Validate(); err != nil {
			return Alphabet[A]{}, fmt.Errorf("letters: building %q: %w", rune('A'+idx), err)
		}
		alphabet[idx] = glyph.ResetTexCoords()
		verts += glyph.VertexCount()
		tris += glyph.TriangleCount()
		log.Debug("letters: glyph built",
			"letter", string(rune('A'+idx)),
			"vertices", glyph.VertexCount(),
			"triangles", glyph.TriangleCount())
	}
	log.Info("letters: alphabet built", "vertices", verts, "triangles", tris)

	return alphabet, nil
}
