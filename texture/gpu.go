package texture

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Descriptor returns a single-mip sRGB texture descriptor sized for t,
// sampleable and writable from the queue.
func Descriptor(t *Texture[RGBA], label string) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.NewExtent2D(uint32(t.Width), uint32(t.Height)),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8UnormSrgb,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// SamplerDescriptor returns the sampler glyph textures are drawn with:
// mirror-repeat addressing on every axis, linear magnification and nearest
// minification.
func SamplerDescriptor() gputypes.SamplerDescriptor {
	s := gputypes.DefaultSamplerDescriptor()
	s.AddressModeU = gputypes.AddressModeMirrorRepeat
	s.AddressModeV = gputypes.AddressModeMirrorRepeat
	s.AddressModeW = gputypes.AddressModeMirrorRepeat
	s.MagFilter = gputypes.FilterModeLinear
	return s
}

// Upload creates a GPU texture holding t.
func Upload(creator gpucontext.TextureCreator, t *Texture[RGBA]) (gpucontext.Texture, error) {
	gpuTex, err := creator.NewTextureFromRGBA(t.Width, t.Height, Bytes(t))
	if err != nil {
		return nil, fmt.Errorf("texture: upload %dx%d: %w", t.Width, t.Height, err)
	}
	return gpuTex, nil
}

// Update replaces the contents of an existing GPU texture with t, which must
// have the dimensions the texture was created with.
func Update(dst gpucontext.TextureUpdater, t *Texture[RGBA]) error {
	if err := dst.UpdateData(Bytes(t)); err != nil {
		return fmt.Errorf("texture: update %dx%d: %w", t.Width, t.Height, err)
	}
	return nil
}
