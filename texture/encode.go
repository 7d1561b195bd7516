package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an image file format Encode can write.
type Format int

const (
	// PNG is lossless and keeps alpha.
	PNG Format = iota
	// BMP is uncompressed.
	BMP
	// TIFF is written Deflate-compressed.
	TIFF
)

// String returns the lower-case file extension of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name or file extension ("png", ".tif", ...) to
// a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("texture: unknown image format %q", name)
}

// ToImage copies t into an image.RGBA. Channels are stored as they are; the
// result is only a valid premultiplied image when t is opaque.
func ToImage(t *Texture[RGBA]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	copy(img.Pix, Bytes(t))
	return img
}

// FromImage converts any image into a texture.
func FromImage(img image.Image) *Texture[RGBA] {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	t := New[RGBA](b.Dx(), b.Dy())
	for i := range t.Values {
		copy(t.Values[i][:], rgba.Pix[i*4:i*4+4])
	}
	return t
}

// Opaque returns a copy of t with every alpha set to 255. Static textures
// carry zero alpha, which most viewers show as fully transparent.
func Opaque(t *Texture[RGBA]) *Texture[RGBA] {
	out := New[RGBA](t.Width, t.Height)
	for i, p := range t.Values {
		p[3] = 255
		out.Values[i] = p
	}
	return out
}

// Resize scales t to width×height with Catmull-Rom filtering.
func Resize(t *Texture[RGBA], width, height int) (*Texture[RGBA], error) {
	if width <= 0 {
		return nil, &ParamsError{Param: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ParamsError{Param: "height", Value: height, Reason: "must be positive"}
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), ToImage(t), image.Rect(0, 0, t.Width, t.Height), draw.Src, nil)
	return FromImage(dst), nil
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, t *Texture[RGBA], f Format) error {
	img := ToImage(t)
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("texture: unsupported format %v", f)
	}
	if err != nil {
		return fmt.Errorf("texture: encode %v: %w", f, err)
	}
	return nil
}
