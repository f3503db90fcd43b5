package graphics

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"scene-studio/internal/registry"
)

// GLUploader is the registry.TextureGPU implementation backed by the
// live OpenGL context.
type GLUploader struct{}

// Upload creates a 2D texture from the decoded pixels, configures wrap
// and filter modes, and generates mipmaps. Pixels are always uploaded
// as RGBA; opts.HasAlpha selects the internal format so opaque sources
// store as RGB.
func (GLUploader) Upload(img *image.RGBA, opts registry.UploadOptions) (uint32, error) {
	w, h := img.Rect.Size().X, img.Rect.Size().Y
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("empty image (%dx%d)", w, h)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	wrap := int32(gl.REPEAT)
	if opts.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGB)
	if opts.HasAlpha {
		internalFormat = gl.RGBA
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture, nil
}

// BindUnit binds texture id to the given texture unit.
func (GLUploader) BindUnit(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Delete frees the GPU texture.
func (GLUploader) Delete(id uint32) {
	gl.DeleteTextures(1, &id)
}
