package registry

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MaxTextureSlots is the number of texture units the scene can use.
const MaxTextureSlots = 16

var (
	ErrRegistryFull = errors.New("texture registry full")
	ErrDuplicateTag = errors.New("texture tag already registered")
)

// TextureEntry associates a lookup tag with a GPU texture handle. Its
// position in the registry is its texture unit slot.
type TextureEntry struct {
	Tag string
	ID  uint32
}

// UploadOptions selects wrap mode and internal format for one upload.
type UploadOptions struct {
	ClampToEdge bool
	HasAlpha    bool
}

// TextureGPU abstracts the GL calls the registry issues, so slot
// bookkeeping and lookup can be tested without a live context. The
// real implementation is graphics.GLUploader.
type TextureGPU interface {
	Upload(img *image.RGBA, opts UploadOptions) (uint32, error)
	BindUnit(unit int, id uint32)
	Delete(id uint32)
}

// TextureRegistry owns the loaded-texture table: at most 16 entries,
// slot index equal to load order. Tags are unique; a duplicate load is
// rejected rather than wasting a slot on an entry lookup can never see.
type TextureRegistry struct {
	gpu        TextureGPU
	entries    []TextureEntry
	edgeDecals map[string]bool
}

func NewTextureRegistry(gpu TextureGPU) *TextureRegistry {
	return &TextureRegistry{
		gpu:        gpu,
		entries:    make([]TextureEntry, 0, MaxTextureSlots),
		edgeDecals: make(map[string]bool),
	}
}

// SetEdgeDecals marks tags whose textures map edge-exact onto a single
// surface (flat decals). They upload with CLAMP_TO_EDGE instead of the
// default REPEAT.
func (r *TextureRegistry) SetEdgeDecals(tags ...string) {
	for _, t := range tags {
		r.edgeDecals[t] = true
	}
}

// LoadTexture decodes the image at path, uploads it with mipmaps, and
// appends a new entry under tag. Decode failures, a full table, and
// duplicate tags all return an error and leave the table untouched.
func (r *TextureRegistry) LoadTexture(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		return fmt.Errorf("load %q: %w", tag, ErrRegistryFull)
	}
	if r.FindTextureSlot(tag) >= 0 {
		return fmt.Errorf("load %q: %w", tag, ErrDuplicateTag)
	}

	rgba, hasAlpha, err := loadImage(path)
	if err != nil {
		return fmt.Errorf("load %q: %w", tag, err)
	}

	id, err := r.gpu.Upload(rgba, UploadOptions{
		ClampToEdge: r.edgeDecals[tag],
		HasAlpha:    hasAlpha,
	})
	if err != nil {
		return fmt.Errorf("load %q: %w", tag, err)
	}

	r.entries = append(r.entries, TextureEntry{Tag: tag, ID: id})
	return nil
}

// BindAll binds every loaded texture to the texture unit matching its
// slot. Call once after all loads, before any textured draw.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.gpu.BindUnit(i, e.ID)
	}
}

// ReleaseAll frees every GPU texture and resets the registry to empty.
func (r *TextureRegistry) ReleaseAll() {
	for _, e := range r.entries {
		r.gpu.Delete(e.ID)
	}
	r.entries = r.entries[:0]
}

// FindTextureSlot returns the texture unit slot for tag, or -1.
func (r *TextureRegistry) FindTextureSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// FindTextureID returns the GPU handle for tag.
func (r *TextureRegistry) FindTextureID(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.ID, true
		}
	}
	return 0, false
}

// Len returns the number of live entries.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// loadImage decodes path into a vertically flipped RGBA buffer. The
// flip matches UV space: GL samples row 0 at the bottom, image decoders
// store it at the top. The bool reports whether the source carried an
// alpha channel.
func loadImage(path string) (*image.RGBA, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("open texture file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	hasAlpha := true
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		hasAlpha = false
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipVertical(rgba)
	return rgba, hasAlpha, nil
}

func flipVertical(img *image.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := img.Stride
	row := make([]uint8, w*4)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : y*stride+w*4]
		bottom := img.Pix[(h-1-y)*stride : (h-1-y)*stride+w*4]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
