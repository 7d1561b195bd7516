package texture

// DefaultSize is the edge length of generated textures when WithSize is not
// given.
const DefaultSize = 512

// RGBA is an 8-bit-per-channel pixel in R, G, B, A order.
type RGBA [4]uint8

// Texture is a row-major Width×Height pixel buffer. Pixel (x, y) lives at
// Values[x+y*Width].
type Texture[P any] struct {
	Values []P
	Width  int
	Height int
}

// New returns a zeroed texture.
func New[P any](width, height int) *Texture[P] {
	return &Texture[P]{
		Values: make([]P, width*height),
		Width:  width,
		Height: height,
	}
}

// SetPixel stores p at (x, y). The coordinates must be in bounds.
func (t *Texture[P]) SetPixel(x, y int, p P) {
	t.Values[x+y*t.Width] = p
}

// GetPixel returns the pixel at (x, y). The coordinates must be in bounds.
func (t *Texture[P]) GetPixel(x, y int) P {
	return t.Values[x+y*t.Width]
}

// Bytes returns the pixels as tightly packed RGBA bytes, the layout GPU
// texture uploads expect.
func Bytes(t *Texture[RGBA]) []byte {
	buf := make([]byte, 0, len(t.Values)*4)
	for _, p := range t.Values {
		buf = append(buf, p[:]...)
	}
	return buf
}

// BytesPerRow returns the row stride of Bytes.
func BytesPerRow(t *Texture[RGBA]) uint32 {
	return uint32(4 * t.Width)
}
