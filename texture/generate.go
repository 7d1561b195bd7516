package texture

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/gogpu/letters"
)

// pcgStream is the fixed second PCG seed word; WithSeed picks the first.
const pcgStream = 0x9e3779b97f4a7c15

// LetterTexture returns a size×size blue-tinted vertical gradient. Row y has
// red and green equal to floor(y*255/size), blue 100 and full alpha.
func LetterTexture(size int) (*Texture[RGBA], error) {
	if size <= 0 {
		return nil, &ParamsError{Param: "size", Value: size, Reason: "must be positive"}
	}
	tex := New[RGBA](size, size)
	for y := 0; y < size; y++ {
		a := uint8(y * 255 / size)
		for x := 0; x < size; x++ {
			tex.SetPixel(x, y, RGBA{a, a, 100, 255})
		}
	}
	return tex, nil
}

// FractalStatic layers random-colored square chunks from chunk size start
// down to end, halving each level. Every level adds its color with half the
// weight of the level before it, so coarse chunks dominate and fine chunks
// add grain. Output is fully determined by the options; alpha is always 0.
//
// start and end must be positive with end <= start, and every chunk size
// visited (start, start/2, ... down to end) must divide the texture size.
func FractalStatic(start, end int, opts ...Option) (*Texture[RGBA], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateStatic(o.size, start, end); err != nil {
		return nil, err
	}

	tex := New[RGBA](o.size, o.size)
	rng := rand.New(rand.NewPCG(o.seed, pcgStream))
	levels := overlayStatic(tex, rng, start, end, 2)

	letters.Logger().Debug("texture: static generated",
		"size", o.size, "start", start, "end", end, "levels", levels)
	return tex, nil
}

func validateStatic(size, start, end int) error {
	switch {
	case size <= 0:
		return &ParamsError{Param: "size", Value: size, Reason: "must be positive"}
	case start <= 0:
		return &ParamsError{Param: "start", Value: start, Reason: "must be positive"}
	case end <= 0:
		return &ParamsError{Param: "end", Value: end, Reason: "must be positive"}
	case end > start:
		return &ParamsError{Param: "end", Value: end, Reason: "must not exceed start"}
	}
	for chunk := start; chunk >= end; chunk /= 2 {
		if size%chunk != 0 {
			return &ParamsError{Param: "chunk", Value: chunk, Reason: "must divide the texture size"}
		}
	}
	return nil
}

// overlayStatic blends one level of chunks into tex, then recurses into the
// next finer level with twice the divisor. It returns the number of levels
// drawn. validateStatic guarantees every chunk visited divides the texture
// size, so chunk never exceeds it.
func overlayStatic(tex *Texture[RGBA], rng *rand.Rand, chunk, end int, div uint8) int {
	if chunk < end {
		return 0
	}

	for cy := 0; cy < tex.Height; cy += chunk {
		for cx := 0; cx < tex.Width; cx += chunk {
			val := randomColor(rng)
			for y := cy; y < cy+chunk; y++ {
				for x := cx; x < cx+chunk; x++ {
					tex.SetPixel(x, y, blend(tex.GetPixel(x, y), val, div))
				}
			}
		}
	}
	letters.Logger().Debug("texture: static level", "chunk", chunk, "div", div)

	next := uint8(255)
	if div < 128 {
		next = div * 2
	}
	return 1 + overlayStatic(tex, rng, chunk/2, end, next)
}

// randomColor draws a uniformly random direction in the positive octant and
// maps its components to channel values.
func randomColor(rng *rand.Rand) [3]uint8 {
	r, g, b := rng.Float32(), rng.Float32(), rng.Float32()
	// Explicit conversions round each product, which keeps the compiler from
	// fusing them into FMA on arm64, ppc64le and s390x.
	n := math32.Sqrt(float32(r*r) + float32(g*g) + float32(b*b))
	if n == 0 {
		return [3]uint8{}
	}
	return [3]uint8{
		uint8(math32.Floor(r / n * 255)),
		uint8(math32.Floor(g / n * 255)),
		uint8(math32.Floor(b / n * 255)),
	}
}

// blend adds val/div to each color channel of old, saturating at 255.
// Alpha is cleared.
func blend(old RGBA, val [3]uint8, div uint8) RGBA {
	var out RGBA
	for c := 0; c < 3; c++ {
		out[c] = uint8(min(255, int(old[c])+int(val[c])/int(div)))
	}
	return out
}
