package shading

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong reflectance parameters pushed into the
// shading program for the current draw.
type Material struct {
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// DefaultMaterial is what the material slot resets to when a draw asks
// for a tag that was never defined. Neutral grey, barely specular.
func DefaultMaterial() Material {
	return Material{
		DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor: mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:     8.0,
	}
}

// RenderState is the full set of uniform values consumed by the shading
// program for one draw call. Every scene.Manager operation mutates this
// struct; the renderer flushes it to the GPU program right before the
// draw executes. Single writer, strictly sequential, so no locking.
type RenderState struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	ObjectColor mgl32.Vec4

	// Texture unit indices for the base and overlay samplers. Only
	// meaningful while the matching use-flag is set.
	TextureSlot int32
	OverlaySlot int32

	UseTexture        bool
	UseTextureOverlay bool
	UseLighting       bool

	UVScale mgl32.Vec2

	Material Material
	Lights   LightRig

	ViewPosition mgl32.Vec3
}

// NewRenderState returns a state with identity transforms, opaque white
// color, unit UV scale, the default material, and every light inactive.
func NewRenderState() *RenderState {
	return &RenderState{
		Model:       mgl32.Ident4(),
		View:        mgl32.Ident4(),
		Projection:  mgl32.Ident4(),
		ObjectColor: mgl32.Vec4{1, 1, 1, 1},
		TextureSlot: -1,
		OverlaySlot: -1,
		UVScale:     mgl32.Vec2{1, 1},
		Material:    DefaultMaterial(),
	}
}
