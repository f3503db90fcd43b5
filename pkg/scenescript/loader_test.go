package scenescript

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	scriptsDir := filepath.Join(dir, "scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(scriptsDir, name+".json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "desk", `{
		"name": "desk",
		"records": [
			{
				"mesh": "plane",
				"scale": [16.5, 1.0, 10.0],
				"texture": "rusticwood",
				"material": "wood"
			},
			{
				"mesh": "box",
				"position": [0, -1, 0],
				"color": [0.2, 0.3, 0.4, 1.0],
				"uvScale": [3, 1],
				"blend": true
			}
		]
	}`)

	loader := NewLoader(dir)
	script, err := loader.LoadScript("desk")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	if script.Name != "desk" {
		t.Errorf("name = %q, want desk", script.Name)
	}
	if len(script.Records) != 2 {
		t.Fatalf("record count = %d, want 2", len(script.Records))
	}

	first := script.Records[0]
	if first.Mesh != MeshPlane {
		t.Errorf("first mesh = %q, want plane", first.Mesh)
	}
	// Defaults fill omitted fields.
	if *first.Color != [4]float32{1, 1, 1, 1} {
		t.Errorf("default color = %v, want opaque white", *first.Color)
	}
	if *first.UVScale != [2]float32{1, 1} {
		t.Errorf("default uvScale = %v, want (1,1)", *first.UVScale)
	}

	second := script.Records[1]
	if second.Scale != [3]float32{1, 1, 1} {
		t.Errorf("default scale = %v, want unit", second.Scale)
	}
	if *second.Color != [4]float32{0.2, 0.3, 0.4, 1.0} {
		t.Errorf("explicit color = %v", *second.Color)
	}
	if !second.Blend {
		t.Error("blend flag lost")
	}
}

func TestLoadScriptCaches(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "desk", `{"name": "desk", "records": [{"mesh": "box"}]}`)

	loader := NewLoader(dir)
	first, err := loader.LoadScript("desk")
	if err != nil {
		t.Fatal(err)
	}

	// Remove the file: the cached script must still be served.
	if err := os.Remove(filepath.Join(dir, "scripts", "desk.json")); err != nil {
		t.Fatal(err)
	}
	second, err := loader.LoadScript("desk")
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if first != second {
		t.Error("loader did not return the cached script")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "badmesh", `{"records": [{"mesh": "dodecahedron"}]}`)
	writeScript(t, dir, "badjson", `{"records": [`)

	loader := NewLoader(dir)

	if _, err := loader.LoadScript("badmesh"); err == nil {
		t.Error("unknown mesh kind accepted")
	}
	if _, err := loader.LoadScript("badjson"); err == nil {
		t.Error("malformed json accepted")
	}
	if _, err := loader.LoadScript("absent"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestMeshKindValid(t *testing.T) {
	valid := []MeshKind{
		MeshBox, MeshPlane, MeshCylinder, MeshCone, MeshSphere,
		MeshHalfSphere, MeshPyramid, MeshPrism, MeshTaperedCylinder,
		MeshTorus, MeshHalfTorus,
	}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("%q reported invalid", k)
		}
	}
	for _, k := range []MeshKind{"", "cube", "BOX"} {
		if k.Valid() {
			t.Errorf("%q reported valid", k)
		}
	}
}

func TestDefaultScript(t *testing.T) {
	script := DefaultScript()

	if len(script.Records) == 0 {
		t.Fatal("default script is empty")
	}
	for i, rec := range script.Records {
		if !rec.Mesh.Valid() {
			t.Errorf("record %d: invalid mesh kind %q", i, rec.Mesh)
		}
		if rec.Color == nil || rec.UVScale == nil {
			t.Errorf("record %d: defaults not applied", i)
		}
		if rec.Scale == [3]float32{} {
			t.Errorf("record %d: zero scale", i)
		}
	}

	// The translucent window renders with blending.
	foundBlend := false
	for _, rec := range script.Records {
		if rec.Blend && rec.Texture == "window" {
			foundBlend = true
			if rec.Color[3] >= 1.0 {
				t.Error("window record is fully opaque")
			}
		}
	}
	if !foundBlend {
		t.Error("no blended window record in default script")
	}
}
