package preview

import (
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/letters"
	"github.com/gogpu/letters/layout"
	"github.com/gogpu/letters/texture"
)

func rgbAt(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func mustAlphabet[A letters.Attribute](t *testing.T) letters.Alphabet[A] {
	t.Helper()
	alphabet, err := letters.CreateAlphabet[A]()
	if err != nil {
		t.Fatalf("CreateAlphabet() error = %v", err)
	}
	return alphabet
}

func mustLines(t *testing.T, text string) layout.Lines {
	t.Helper()
	lines, err := layout.Instances(text)
	if err != nil {
		t.Fatalf("Instances(%q) error = %v", text, err)
	}
	return lines
}

var black = gg.RGB(0, 0, 0)

// With one glyph on a square canvas the orthographic fit maps glyph space
// (gx, gy) to pixel (50 + 90*gx, 95 - 90*gy).

func TestRender_VertexColors(t *testing.T) {
	alphabet := mustAlphabet[letters.Color](t)
	l, _ := letters.LetterIndex('L')
	alphabet[l] = letters.Recolor(alphabet[l], letters.Color{G: 1})
	lines := mustLines(t, "l")

	dc := gg.NewContext(100, 100)
	stats, err := Render(dc, &alphabet, &lines, Options{Background: black})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.Instances != 1 || stats.Triangles != alphabet[l].TriangleCount() || stats.Culled != 0 {
		t.Errorf("stats = %+v", stats)
	}

	img := dc.Image()
	tests := []struct {
		name string
		x, y int
		want [3]uint8
	}{
		{"stem", 10, 80, [3]uint8{0, 255, 0}},
		{"foot", 85, 82, [3]uint8{0, 255, 0}},
		{"open corner", 68, 32, [3]uint8{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := rgbAt(img, tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRender_Texture(t *testing.T) {
	alphabet := mustAlphabet[letters.TexCoord](t)
	lines := mustLines(t, "l")

	tex := texture.New[texture.RGBA](4, 4)
	for i := range tex.Values {
		tex.Values[i] = texture.RGBA{200, 0, 0, 0}
	}

	dc := gg.NewContext(100, 100)
	if _, err := Render(dc, &alphabet, &lines, Options{Texture: tex, Background: black}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := rgbAt(dc.Image(), 10, 80); got != [3]uint8{200, 0, 0} {
		t.Errorf("stem = %v, want the texture color", got)
	}
}

func TestRender_CullsBackFaces(t *testing.T) {
	alphabet := mustAlphabet[letters.Color](t)
	l, _ := letters.LetterIndex('L')
	alphabet[l] = alphabet[l].Flip()
	lines := mustLines(t, "l")

	dc := gg.NewContext(100, 100)
	stats, err := Render(dc, &alphabet, &lines, Options{Background: black})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.Triangles != 0 || stats.Culled != alphabet[l].TriangleCount() {
		t.Errorf("stats = %+v, want every triangle culled", stats)
	}
	if got := rgbAt(dc.Image(), 10, 80); got != [3]uint8{} {
		t.Errorf("stem = %v, want background", got)
	}
}

func TestRender_SkipsEmptyGlyphs(t *testing.T) {
	alphabet := mustAlphabet[letters.Color](t)
	h, _ := letters.LetterIndex('H')
	alphabet[h] = letters.Empty[letters.Color]()
	lines := mustLines(t, "hi")

	dc := gg.NewContext(64, 32)
	stats, err := Render(dc, &alphabet, &lines, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	i, _ := letters.LetterIndex('I')
	if stats.Instances != 1 || stats.Triangles != alphabet[i].TriangleCount() {
		t.Errorf("stats = %+v, want only the I drawn", stats)
	}
}

func TestRender_Camera(t *testing.T) {
	alphabet := mustAlphabet[letters.Color](t)
	lines := mustLines(t, "hello")
	cam := layout.DefaultCamera(2)

	dc := gg.NewContext(200, 100)
	stats, err := Render(dc, &alphabet, &lines, Options{Camera: &cam, Background: black})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.Instances != 5 || stats.Culled != 0 || stats.Triangles == 0 {
		t.Errorf("stats = %+v, want every triangle of 5 glyphs drawn", stats)
	}

	lit := 0
	img := dc.Image()
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if rgbAt(img, x, y) != [3]uint8{} {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("nothing visible through the default camera")
	}
}

func TestMirrorRepeat(t *testing.T) {
	tests := []struct {
		c    float32
		want int
	}{
		{0, 0},
		{0.25, 1},
		{0.99, 3},
		{1, 3},
		{1.25, 3},
		{1.8, 0},
		{-0.25, 1},
		{2.3, 1},
	}
	for _, tt := range tests {
		if got := mirrorRepeat(tt.c, 4); got != tt.want {
			t.Errorf("mirrorRepeat(%g, 4) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
