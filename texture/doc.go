// Package texture generates the raster textures glyph meshes are drawn
// with: a flat test gradient and a layered fractal static pattern.
//
// Textures are plain row-major pixel buffers. Bytes and BytesPerRow give
// the upload layout, Descriptor and SamplerDescriptor describe the GPU
// objects, and Upload hands the pixels to any gpucontext.TextureCreator.
// Encode writes PNG, BMP or TIFF files for inspection.
//
//	tex, err := texture.FractalStatic(64, 4)
//	if err != nil {
//	    return err
//	}
//	gpuTex, err := texture.Upload(creator, tex)
package texture
