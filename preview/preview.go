// Package preview rasterizes laid-out glyph meshes on the CPU with gg, for
// checking geometry and textures without a GPU.
package preview

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"

	"github.com/gogpu/letters"
	"github.com/gogpu/letters/layout"
	"github.com/gogpu/letters/texture"
)

// DefaultMargin is the share of the canvas left empty around the text when
// no camera is given.
const DefaultMargin = 0.05

// Options controls how Render draws.
type Options struct {
	// Texture is sampled for TexCoord glyphs. Nil paints them white.
	Texture *texture.Texture[texture.RGBA]

	// Camera projects in perspective. Nil fits the text into the canvas
	// with an orthographic front view.
	Camera *layout.Camera

	// Background clears the canvas before drawing.
	Background gg.RGBA

	// Margin overrides DefaultMargin for the orthographic fit.
	Margin float64
}

// Stats summarizes one Render call.
type Stats struct {
	Instances int
	Triangles int // filled
	Culled    int // back-facing or behind the camera
}

// triangle is one projected, colored glyph triangle in screen space.
type triangle struct {
	pts   [3][2]float64
	depth float32
	color gg.RGBA
}

// Render rasterizes every laid-out glyph onto dc. Glyphs whose model is
// empty are skipped. Triangles are culled like the GPU pipeline would:
// counter-clockwise is front-facing.
func Render[A letters.Attribute](dc *gg.Context, alphabet *letters.Alphabet[A], lines *layout.Lines, opts Options) (Stats, error) {
	var stats Stats
	proj := newProjector(dc.Width(), dc.Height(), alphabet, lines, opts)

	var tris []triangle
	for idx, instances := range lines {
		glyph := alphabet[idx]
		if glyph.IsEmpty() {
			continue
		}
		for _, in := range instances {
			stats.Instances++
			model := in.Mat4()
			for _, t := range glyph.Tris {
				pos := [3]mgl32.Vec3{
					glyph.Verts[t[0]].Position,
					glyph.Verts[t[1]].Position,
					glyph.Verts[t[2]].Position,
				}
				tri, ok := proj.project(model, pos)
				if !ok {
					stats.Culled++
					continue
				}
				tri.color = shade(glyph, t, opts.Texture)
				tris = append(tris, tri)
			}
		}
	}

	// Far triangles first.
	slices.SortStableFunc(tris, func(a, b triangle) int {
		return cmp.Compare(b.depth, a.depth)
	})

	dc.ClearWithColor(opts.Background)
	for _, t := range tris {
		dc.SetColor(t.color)
		dc.MoveTo(t.pts[0][0], t.pts[0][1])
		dc.LineTo(t.pts[1][0], t.pts[1][1])
		dc.LineTo(t.pts[2][0], t.pts[2][1])
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return stats, fmt.Errorf("preview: fill: %w", err)
		}
		stats.Triangles++
	}

	letters.Logger().Debug("preview: rendered",
		"instances", stats.Instances, "triangles", stats.Triangles, "culled", stats.Culled)
	return stats, nil
}

// shade picks the fill color of triangle t: the mean vertex color for
// Color glyphs, the texture at the centroid for TexCoord glyphs.
func shade[A letters.Attribute](glyph letters.Model[A], t letters.Triangle, tex *texture.Texture[texture.RGBA]) gg.RGBA {
	var r, g, b, u, v float32
	for _, idx := range t {
		switch a := any(glyph.Verts[idx].Attr).(type) {
		case letters.Color:
			r, g, b = r+a.R/3, g+a.G/3, b+a.B/3
		case letters.TexCoord:
			u, v = u+a.U/3, v+a.V/3
		}
	}
	var zero A
	if _, ok := any(zero).(letters.TexCoord); ok {
		if tex == nil {
			return gg.RGB(1, 1, 1)
		}
		p := sample(tex, u, v)
		return gg.RGB(float64(p[0])/255, float64(p[1])/255, float64(p[2])/255)
	}
	return gg.RGB(float64(r), float64(g), float64(b))
}

// sample reads the texel at (u, v) with mirror-repeat addressing and
// nearest filtering.
func sample(tex *texture.Texture[texture.RGBA], u, v float32) texture.RGBA {
	return tex.GetPixel(mirrorRepeat(u, tex.Width), mirrorRepeat(v, tex.Height))
}

func mirrorRepeat(c float32, n int) int {
	f := c - 2*math32.Floor(c/2) // [0, 2)
	if f > 1 {
		f = 2 - f
	}
	return min(int(f*float32(n)), n-1)
}

// projector maps model-space glyph vertices to canvas pixels.
type projector struct {
	width, height float64
	viewProj      *mgl32.Mat4

	// orthographic fit: pixel = offset + world*scale, y flipped
	scale            float64
	offsetX, offsetY float64
}

func newProjector[A letters.Attribute](width, height int, alphabet *letters.Alphabet[A], lines *layout.Lines, opts Options) *projector {
	p := &projector{width: float64(width), height: float64(height)}
	if opts.Camera != nil {
		vp := opts.Camera.ViewProjection()
		p.viewProj = &vp
		return p
	}

	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	lo, hi, ok := worldBounds(alphabet, lines)
	if !ok {
		p.scale = 1
		return p
	}
	w, h := float64(hi[0]-lo[0]), float64(hi[1]-lo[1])
	availW, availH := p.width*(1-2*margin), p.height*(1-2*margin)
	p.scale = min(availW/max(w, 1e-6), availH/max(h, 1e-6))
	cx, cy := float64(lo[0]+hi[0])/2, float64(lo[1]+hi[1])/2
	p.offsetX = p.width/2 - cx*p.scale
	p.offsetY = p.height/2 + cy*p.scale
	return p
}

// worldBounds returns the xy bounding box of every drawn glyph vertex.
func worldBounds[A letters.Attribute](alphabet *letters.Alphabet[A], lines *layout.Lines) (lo, hi mgl32.Vec2, ok bool) {
	for idx, instances := range lines {
		glyph := alphabet[idx]
		if glyph.IsEmpty() {
			continue
		}
		for _, in := range instances {
			m := in.Mat4()
			for _, v := range glyph.Verts {
				w := mgl32.TransformCoordinate(v.Position, m)
				if !ok {
					lo, hi, ok = w.Vec2(), w.Vec2(), true
					continue
				}
				lo = mgl32.Vec2{min(lo[0], w[0]), min(lo[1], w[1])}
				hi = mgl32.Vec2{max(hi[0], w[0]), max(hi[1], w[1])}
			}
		}
	}
	return lo, hi, ok
}

// project transforms a model-space triangle to canvas pixels. It reports
// false when the triangle is back-facing or crosses behind the camera.
func (p *projector) project(model mgl32.Mat4, pos [3]mgl32.Vec3) (triangle, bool) {
	var out triangle
	var ndc [3]mgl32.Vec2
	if p.viewProj == nil {
		for i := range pos {
			w := mgl32.TransformCoordinate(pos[i], model)
			ndc[i] = w.Vec2()
			out.pts[i] = [2]float64{p.offsetX + float64(w[0])*p.scale, p.offsetY - float64(w[1])*p.scale}
			out.depth -= w[2] / 3
		}
	} else {
		mvp := p.viewProj.Mul4(model)
		for i := range pos {
			clip := mvp.Mul4x1(pos[i].Vec4(1))
			if clip[3] <= 0 {
				return triangle{}, false
			}
			n := clip.Vec3().Mul(1 / clip[3])
			ndc[i] = n.Vec2()
			out.pts[i] = [2]float64{(float64(n[0]) + 1) / 2 * p.width, (1 - float64(n[1])) / 2 * p.height}
			out.depth += n[2] / 3
		}
	}
	if cross(ndc) <= 0 {
		return triangle{}, false
	}
	return out, true
}

// cross returns twice the signed area of a 2D triangle.
func cross(v [3]mgl32.Vec2) float32 {
	a, b := v[1].Sub(v[0]), v[2].Sub(v[0])
	return a[0]*b[1] - a[1]*b[0]
}
