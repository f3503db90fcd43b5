package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/registry"
	"scene-studio/internal/shading"
	"scene-studio/pkg/scenescript"
)

const eps = 1e-5

// nullGPU satisfies registry.TextureGPU without a GL context.
type nullGPU struct{ next uint32 }

func (g *nullGPU) Upload(img *image.RGBA, opts registry.UploadOptions) (uint32, error) {
	g.next++
	return g.next, nil
}
func (g *nullGPU) BindUnit(unit int, id uint32) {}
func (g *nullGPU) Delete(id uint32)             {}

// recordingDrawer satisfies MeshDrawer and records the kinds drawn.
type recordingDrawer struct {
	drawn []scenescript.MeshKind
}

func (d *recordingDrawer) Draw(kind scenescript.MeshKind) error {
	if !kind.Valid() {
		return fmt.Errorf("no mesh registered for kind %q", kind)
	}
	d.drawn = append(d.drawn, kind)
	return nil
}

// newTestManager builds a Manager whose registry holds the given tags.
func newTestManager(t *testing.T, textureTags ...string) *Manager {
	t.Helper()
	dir := t.TempDir()
	reg := registry.NewTextureRegistry(&nullGPU{})

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, tag := range textureTags {
		if err := reg.LoadTexture(path, tag); err != nil {
			t.Fatalf("LoadTexture(%q): %v", tag, err)
		}
	}

	materials := registry.NewMaterialLibrary()
	materials.DefineObjectMaterials()
	return NewManager(reg, materials, &recordingDrawer{})
}

func TestComposeModelMatrixPureTranslation(t *testing.T) {
	got := ComposeModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{5, 0, 0})
	want := mgl32.Translate3D(5, 0, 0)

	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("identity scale/rotation compose =\n%v\nwant pure translation\n%v", got, want)
	}
}

func TestComposeModelMatrixRotationOrder(t *testing.T) {
	// Rotation applies X first, then Y. For a point on the Y axis,
	// Rx(90°) carries it to +Z and Ry(90°) then carries it to +X.
	m := ComposeModelMatrix(mgl32.Vec3{1, 1, 1}, 90, 90, 0, mgl32.Vec3{})
	p := mgl32.Vec4{0, 1, 0, 1}

	got := m.Mul4x1(p)
	want := mgl32.Vec4{1, 0, 0, 1}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("T·Rz·Ry·Rx·S applied to %v = %v, want %v", p, got, want)
	}

	// The reversed order (Y before X) leaves the point on +Z instead:
	// swapping the composition is a detectably different matrix.
	swapped := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	gotSwapped := swapped.Mul4x1(p)
	wantSwapped := mgl32.Vec4{0, 0, 1, 1}
	if !gotSwapped.ApproxEqualThreshold(wantSwapped, eps) {
		t.Errorf("Rx·Ry applied to %v = %v, want %v", p, gotSwapped, wantSwapped)
	}
	if got.ApproxEqualThreshold(gotSwapped, eps) {
		t.Error("rotation order did not affect the result for non-commuting angles")
	}
}

func TestComposeModelMatrixScaleBeforeRotation(t *testing.T) {
	// Scale 2 along X then rotate Z by 90°: the X unit vector must end
	// up at (0,2,0), not (0,1,0).
	m := ComposeModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 0, 90, mgl32.Vec3{})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 2, 0, 1}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("scaled+rotated X axis = %v, want %v", got, want)
	}
}

func TestSetTransformationsPublishesModel(t *testing.T) {
	m := newTestManager(t)
	m.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 3, 0})

	want := mgl32.Translate3D(0, 3, 0)
	if !m.State.Model.ApproxEqualThreshold(want, eps) {
		t.Errorf("state model =\n%v\nwant\n%v", m.State.Model, want)
	}
}

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	m := newTestManager(t, "wood")

	if err := m.SetShaderTexture("wood"); err != nil {
		t.Fatalf("SetShaderTexture: %v", err)
	}
	if !m.State.UseTexture {
		t.Fatal("texture flag not set")
	}

	m.SetShaderColor(0.2, 0.3, 0.4, 1.0)
	if m.State.UseTexture {
		t.Error("SetShaderColor left texturing enabled")
	}
	want := mgl32.Vec4{0.2, 0.3, 0.4, 1.0}
	if m.State.ObjectColor != want {
		t.Errorf("object color = %v, want %v", m.State.ObjectColor, want)
	}
}

func TestSetShaderTextureResolvesSlot(t *testing.T) {
	m := newTestManager(t, "wood", "panda")

	if err := m.SetShaderTexture("panda"); err != nil {
		t.Fatalf("SetShaderTexture: %v", err)
	}
	if !m.State.UseTexture {
		t.Error("texture flag not set")
	}
	if m.State.TextureSlot != 1 {
		t.Errorf("texture slot = %d, want 1", m.State.TextureSlot)
	}
}

func TestSetShaderTextureUnresolvedTag(t *testing.T) {
	m := newTestManager(t, "wood")

	if err := m.SetShaderTexture("wood"); err != nil {
		t.Fatal(err)
	}
	err := m.SetShaderTexture("missing")
	if err == nil {
		t.Fatal("unresolved tag did not error")
	}
	// An invalid sampler index must never reach the program: texturing
	// is off for the next draw.
	if m.State.UseTexture {
		t.Error("texturing still enabled after unresolved tag")
	}
}

func TestSetShaderOverlayTexture(t *testing.T) {
	m := newTestManager(t, "wood", "keyboard")

	if err := m.SetShaderOverlayTexture("keyboard"); err != nil {
		t.Fatalf("SetShaderOverlayTexture: %v", err)
	}
	if !m.State.UseTextureOverlay {
		t.Error("overlay flag not set")
	}
	if m.State.OverlaySlot != 1 {
		t.Errorf("overlay slot = %d, want 1", m.State.OverlaySlot)
	}

	if err := m.SetShaderOverlayTexture("missing"); err == nil {
		t.Fatal("unresolved overlay tag did not error")
	}
	if m.State.UseTextureOverlay {
		t.Error("overlay still enabled after unresolved tag")
	}

	if err := m.SetShaderOverlayTexture("keyboard"); err != nil {
		t.Fatal(err)
	}
	m.ClearOverlayTexture()
	if m.State.UseTextureOverlay {
		t.Error("ClearOverlayTexture left overlay enabled")
	}
}

func TestSetShaderMaterial(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetShaderMaterial("wood"); err != nil {
		t.Fatalf("SetShaderMaterial: %v", err)
	}
	want := mgl32.Vec3{0.55, 0.27, 0.07}
	if m.State.Material.DiffuseColor != want {
		t.Errorf("material diffuse = %v, want %v", m.State.Material.DiffuseColor, want)
	}
	if m.State.Material.Shininess != 20.0 {
		t.Errorf("material shininess = %v, want 20", m.State.Material.Shininess)
	}
}

func TestSetShaderMaterialUnresolvedResetsDefault(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetShaderMaterial("metal"); err != nil {
		t.Fatal(err)
	}
	err := m.SetShaderMaterial("missing")
	if err == nil {
		t.Fatal("unresolved material tag did not error")
	}
	// The previous draw's material must not leak into this one.
	if m.State.Material != shading.DefaultMaterial() {
		t.Errorf("material after unresolved tag = %+v, want default", m.State.Material)
	}
}

func TestSetTextureUVScale(t *testing.T) {
	m := newTestManager(t)
	m.SetTextureUVScale(3, 1)

	if m.State.UVScale != (mgl32.Vec2{3, 1}) {
		t.Errorf("UV scale = %v, want (3,1)", m.State.UVScale)
	}
}

func TestDrawMesh(t *testing.T) {
	m := newTestManager(t)
	drawer := m.Meshes.(*recordingDrawer)

	if err := m.DrawMesh(scenescript.MeshBox); err != nil {
		t.Fatalf("DrawMesh: %v", err)
	}
	if err := m.DrawMesh("dodecahedron"); err == nil {
		t.Error("unregistered mesh kind drew without error")
	}
	if len(drawer.drawn) != 1 || drawer.drawn[0] != scenescript.MeshBox {
		t.Errorf("drawn = %v, want [box]", drawer.drawn)
	}
}
