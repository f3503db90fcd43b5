package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/registry"
	"scene-studio/internal/shading"
	"scene-studio/pkg/scenescript"
)

// Manager prepares the render state for each draw of the scene: it
// composes model transforms and distributes color, texture, material,
// and UV-scale parameters into the shared uniform state. Every setter
// must run before the draw call that should see it; execution is
// strictly sequential, so ordering is the only discipline needed.
type Manager struct {
	State     *shading.RenderState
	Textures  *registry.TextureRegistry
	Materials *registry.MaterialLibrary
	Meshes    MeshDrawer
}

func NewManager(textures *registry.TextureRegistry, materials *registry.MaterialLibrary, meshes MeshDrawer) *Manager {
	return &Manager{
		State:     shading.NewRenderState(),
		Textures:  textures,
		Materials: materials,
		Meshes:    meshes,
	}
}

// DrawMesh issues the draw for kind against the prepared state. The
// caller must have flushed the state to the shading program first.
func (m *Manager) DrawMesh(kind scenescript.MeshKind) error {
	return m.Meshes.Draw(kind)
}

// ComposeModelMatrix builds a model matrix from scale, per-axis
// rotation in degrees, and translation. The composition order is
// fixed: Translation * Rz * Ry * Rx * Scale. Scale applies first, then
// rotation about X, then Y, then Z, then translation; every placement
// in the scene depends on this exact order.
func ComposeModelMatrix(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, translate mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(xDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDeg))
	t := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// SetTransformations composes the model matrix and publishes it to the
// render state for the next draw.
func (m *Manager) SetTransformations(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, translate mgl32.Vec3) {
	m.State.Model = ComposeModelMatrix(scale, xDeg, yDeg, zDeg, translate)
}

// SetViewProjection publishes the camera matrices and eye position.
func (m *Manager) SetViewProjection(view, projection mgl32.Mat4, viewPos mgl32.Vec3) {
	m.State.View = view
	m.State.Projection = projection
	m.State.ViewPosition = viewPos
}

// SetShaderColor disables texture sampling and sets the flat object
// color for the next draw.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.State.UseTexture = false
	m.State.ObjectColor = mgl32.Vec4{r, g, b, a}
}

// SetShaderTexture enables texture sampling from the slot registered
// under tag. An unresolved tag is an error: texturing stays disabled
// rather than pushing an invalid sampler index into the program.
func (m *Manager) SetShaderTexture(tag string) error {
	slot := m.Textures.FindTextureSlot(tag)
	if slot < 0 {
		m.State.UseTexture = false
		return fmt.Errorf("texture tag %q not loaded", tag)
	}
	m.State.UseTexture = true
	m.State.TextureSlot = int32(slot)
	return nil
}

// SetShaderOverlayTexture enables the overlay sampler from the slot
// registered under tag. Where the overlay's sampled alpha exceeds the
// threshold, its color replaces the base color for that fragment.
func (m *Manager) SetShaderOverlayTexture(tag string) error {
	slot := m.Textures.FindTextureSlot(tag)
	if slot < 0 {
		m.State.UseTextureOverlay = false
		return fmt.Errorf("overlay texture tag %q not loaded", tag)
	}
	m.State.UseTextureOverlay = true
	m.State.OverlaySlot = int32(slot)
	return nil
}

// ClearOverlayTexture disables the overlay sampler.
func (m *Manager) ClearOverlayTexture() {
	m.State.UseTextureOverlay = false
}

// SetShaderMaterial pushes the material registered under tag into the
// render state. An unresolved tag resets the slot to the default
// material instead of leaving the previous draw's material in place.
func (m *Manager) SetShaderMaterial(tag string) error {
	mat, ok := m.Materials.Find(tag)
	if !ok {
		m.State.Material = shading.DefaultMaterial()
		return fmt.Errorf("material tag %q not defined", tag)
	}
	m.State.Material = mat
	return nil
}

// SetTextureUVScale sets the texture-coordinate multiplier.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.State.UVScale = mgl32.Vec2{u, v}
}

// EnableLighting toggles the lighting path in the shading program.
func (m *Manager) EnableLighting(on bool) {
	m.State.UseLighting = on
}
