package registry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/shading"
)

func TestDefineObjectMaterials(t *testing.T) {
	lib := NewMaterialLibrary()
	lib.DefineObjectMaterials()

	tests := []struct {
		tag       string
		diffuse   mgl32.Vec3
		specular  mgl32.Vec3
		shininess float32
	}{
		{"plastic", mgl32.Vec3{0.6, 0.6, 0.6}, mgl32.Vec3{0.8, 0.8, 0.8}, 300.0},
		{"wood", mgl32.Vec3{0.55, 0.27, 0.07}, mgl32.Vec3{0.1, 0.05, 0.02}, 20.0},
		{"silicone", mgl32.Vec3{0.9, 0.9, 0.9}, mgl32.Vec3{0.2, 0.2, 0.2}, 2.0},
		{"window", mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.9, 0.9, 0.9}, 500.0},
	}

	for _, tt := range tests {
		mat, ok := lib.Find(tt.tag)
		if !ok {
			t.Errorf("Find(%q) not found", tt.tag)
			continue
		}
		if mat.DiffuseColor != tt.diffuse {
			t.Errorf("%s diffuse = %v, want %v", tt.tag, mat.DiffuseColor, tt.diffuse)
		}
		if mat.SpecularColor != tt.specular {
			t.Errorf("%s specular = %v, want %v", tt.tag, mat.SpecularColor, tt.specular)
		}
		if mat.Shininess != tt.shininess {
			t.Errorf("%s shininess = %v, want %v", tt.tag, mat.Shininess, tt.shininess)
		}
	}

	if lib.Len() != 8 {
		t.Errorf("material count = %d, want 8", lib.Len())
	}
}

func TestFindMaterialNotFound(t *testing.T) {
	lib := NewMaterialLibrary()

	// Empty library.
	if _, ok := lib.Find("wood"); ok {
		t.Error("Find on empty library reported found")
	}

	lib.DefineObjectMaterials()
	if _, ok := lib.Find("nonexistent"); ok {
		t.Error("Find(nonexistent) reported found")
	}
}

func TestDefineRejectsRedefinition(t *testing.T) {
	lib := NewMaterialLibrary()
	first := shading.Material{DiffuseColor: mgl32.Vec3{1, 0, 0}, Shininess: 10}

	if err := lib.Define("metal", first); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if err := lib.Define("metal", shading.Material{Shininess: 99}); err == nil {
		t.Fatal("redefinition succeeded, want error")
	}

	// The original entry must be intact.
	mat, ok := lib.Find("metal")
	if !ok {
		t.Fatal("Find(metal) not found")
	}
	if mat.Shininess != 10 {
		t.Errorf("shininess = %v after rejected redefinition, want 10", mat.Shininess)
	}
}
