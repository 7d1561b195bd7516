// Package letters builds triangle meshes for block-letter glyphs.
//
// # Overview
//
// Glyphs are assembled from a handful of 2D primitives (triangles, quads,
// triangle strips and arc bands) combined with composition and mirror
// operators. The resulting Model values are ready to upload as vertex and
// index buffers for any GPU API; this package never talks to a device.
//
// # Quick Start
//
//	import "github.com/gogpu/letters"
//
//	alphabet, err := letters.CreateAlphabet[letters.TexCoord]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, _ := alphabet.Letter('h')
//	vertices := h.VertexBytes() // layout: letters.VertexLayout[letters.TexCoord]()
//	indices := h.IndexBytes()   // format: letters.IndexFormat
//
// # Building Glyphs
//
// Operators consume a Model and return a new one, so halves of symmetric
// shapes are written once and mirrored:
//
//	h := letters.Rect2D[letters.Color]([4]mgl32.Vec2{
//	    {0.5, 0.0}, {0.5, 1.0}, {0.2, 1.0}, {0.2, 0.0},
//	}).AppendApply(letters.MirrorX)
//
// Mirror operators flip triangle winding before reflecting, so mirrored
// parts stay front-facing.
//
// # Coordinate System
//
// Glyph space is x∈[-0.5, 0.5], y∈[0, 1], z=0:
//   - X increases right
//   - Y increases up
//   - Counter-clockwise triangles face +Z
//
// Texture coordinates derive from position as (x+0.5, y).
//
// # Vertex Formats
//
// Models are generic over their auxiliary vertex channel: Color (three
// float32) or TexCoord (two float32). VertexLayout describes either one
// with gputypes.
//
// # Related Packages
//
//   - texture: gradient and fractal static textures
//   - layout: positions a line of text as per-letter instances
//   - preview: CPU rendering of laid-out text with gogpu/gg
package letters
