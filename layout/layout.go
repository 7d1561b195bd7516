package layout

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/letters"
)

// Default line placement.
const (
	DefaultLeft  float32 = -5
	DefaultRight float32 = 5
	DefaultDepth float32 = -5

	// fill is the share of each character cell a glyph occupies.
	fill = 0.75
)

// ErrUnsupportedRune is returned for characters that have no glyph and are
// not spaces.
var ErrUnsupportedRune = errors.New("layout: unsupported rune")

// Instance places one glyph in world space.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    float32
}

// Mat4 returns the model matrix translate · rotate · scale.
func (in Instance) Mat4() mgl32.Mat4 {
	p := in.Position
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(in.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(in.Scale, in.Scale, in.Scale))
}

// Lines maps each alphabet index to the instances of that letter, so a
// renderer issues one instanced draw per glyph.
type Lines [letters.LetterCount][]Instance

// Count returns the total number of instances.
func (l *Lines) Count() int {
	n := 0
	for _, in := range l {
		n += len(in)
	}
	return n
}

// fold lower-cases text and strips combining marks, so "Héllo" lays out
// as "hello".
func fold(text string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	s, _, err := transform.String(t, text)
	if err != nil {
		return "", fmt.Errorf("layout: normalize %q: %w", text, err)
	}
	return s, nil
}

// Instances lays text out as a single line between the left and right
// bounds. Every character gets an equal-width cell; letters are centered
// in their cell and scaled to three quarters of its width, spaces leave
// their cell empty. Any other character fails with ErrUnsupportedRune.
func Instances(text string, opts ...Option) (Lines, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var lines Lines
	folded, err := fold(text)
	if err != nil {
		return lines, err
	}
	n := utf8.RuneCountInString(folded)
	if n == 0 {
		return lines, nil
	}

	width := (o.right - o.left) / float32(n)
	scale := width * fill
	i := 0
	for _, r := range folded {
		if unicode.IsSpace(r) {
			i++
			continue
		}
		idx, ok := letters.LetterIndex(r)
		if !ok {
			return Lines{}, fmt.Errorf("%w: %q at position %d", ErrUnsupportedRune, r, i)
		}
		pos := mgl32.Vec3{o.left + (float32(i)+0.5)*width, 0, o.depth}
		lines[idx] = append(lines[idx], Instance{
			Position: pos,
			Rotation: rotation(pos, o.angle),
			Scale:    scale,
		})
		i++
	}

	letters.Logger().Debug("layout: line placed", "text", folded, "cells", n, "instances", lines.Count())
	return lines, nil
}

// rotation turns a glyph by angle radians about the axis from the origin
// through its position.
func rotation(pos mgl32.Vec3, angle float32) mgl32.Quat {
	if angle == 0 || pos.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(angle, pos.Normalize())
}
