package registry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/shading"
)

// MaterialEntry associates a lookup tag with Phong reflectance values.
// Entries are immutable once defined.
type MaterialEntry struct {
	Tag      string
	Material shading.Material
}

// MaterialLibrary is the scene's material table, populated once at
// setup and read by tag for every draw afterwards.
type MaterialLibrary struct {
	entries []MaterialEntry
}

func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{}
}

// Define appends a material under tag. Redefinition is rejected: the
// table is write-once per tag.
func (m *MaterialLibrary) Define(tag string, mat shading.Material) error {
	if _, ok := m.Find(tag); ok {
		return fmt.Errorf("material %q already defined", tag)
	}
	m.entries = append(m.entries, MaterialEntry{Tag: tag, Material: mat})
	return nil
}

// Find returns the material registered under tag.
func (m *MaterialLibrary) Find(tag string) (shading.Material, bool) {
	for _, e := range m.entries {
		if e.Tag == tag {
			return e.Material, true
		}
	}
	return shading.Material{}, false
}

// Len returns the number of defined materials.
func (m *MaterialLibrary) Len() int {
	return len(m.entries)
}

// DefineObjectMaterials populates the library with the standard scene
// material set.
func (m *MaterialLibrary) DefineObjectMaterials() {
	define := func(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
		// Ignoring the error is safe here: tags below are unique and
		// the library starts empty at scene setup.
		_ = m.Define(tag, shading.Material{
			DiffuseColor:  diffuse,
			SpecularColor: specular,
			Shininess:     shininess,
		})
	}

	define("plastic", mgl32.Vec3{0.6, 0.6, 0.6}, mgl32.Vec3{0.8, 0.8, 0.8}, 300.0)
	define("hardplastic", mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.5, 0.5, 0.5}, 150.0)
	define("wood", mgl32.Vec3{0.55, 0.27, 0.07}, mgl32.Vec3{0.1, 0.05, 0.02}, 20.0)
	define("silicone", mgl32.Vec3{0.9, 0.9, 0.9}, mgl32.Vec3{0.2, 0.2, 0.2}, 2.0)
	define("rug", mgl32.Vec3{0.65, 0.45, 0.3}, mgl32.Vec3{0.05, 0.05, 0.05}, 1.0)
	define("wall", mgl32.Vec3{0.55, 0.55, 0.55}, mgl32.Vec3{0.2, 0.2, 0.2}, 5.0)
	define("metal", mgl32.Vec3{0.7, 0.7, 0.7}, mgl32.Vec3{1.0, 1.0, 1.0}, 300.0)
	define("window", mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.9, 0.9, 0.9}, 500.0)
}
