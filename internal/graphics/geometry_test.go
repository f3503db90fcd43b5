package graphics

import (
	"math"
	"testing"

	"scene-studio/pkg/scenescript"
)

func TestPrimitiveVerticesCoverAllKinds(t *testing.T) {
	verts := primitiveVertices()

	kinds := []scenescript.MeshKind{
		scenescript.MeshBox, scenescript.MeshPlane, scenescript.MeshCylinder,
		scenescript.MeshCone, scenescript.MeshSphere, scenescript.MeshHalfSphere,
		scenescript.MeshPyramid, scenescript.MeshPrism,
		scenescript.MeshTaperedCylinder, scenescript.MeshTorus,
		scenescript.MeshHalfTorus,
	}
	for _, kind := range kinds {
		data, ok := verts[kind]
		if !ok {
			t.Errorf("no geometry for %q", kind)
			continue
		}
		if len(data) == 0 || len(data)%8 != 0 {
			t.Errorf("%q: %d floats, want a non-empty multiple of 8", kind, len(data))
		}
		// Whole triangles only.
		if (len(data)/8)%3 != 0 {
			t.Errorf("%q: %d vertices, not a whole number of triangles", kind, len(data)/8)
		}
	}
}

func TestGeneratedNormalsAreUnitLength(t *testing.T) {
	for kind, data := range primitiveVertices() {
		for i := 0; i < len(data); i += 8 {
			nx, ny, nz := data[i+3], data[i+4], data[i+5]
			l := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
			if math.Abs(l-1) > 1e-4 {
				t.Errorf("%q vertex %d: normal length %v", kind, i/8, l)
				break
			}
		}
	}
}

func TestGeneratedPositionsStayInUnitBounds(t *testing.T) {
	// Every generated primitive fits in a radius-√2 ball around the
	// origin so script scales behave predictably.
	limit := math.Sqrt2 + 1e-4
	for kind, data := range primitiveVertices() {
		for i := 0; i < len(data); i += 8 {
			x, y, z := data[i], data[i+1], data[i+2]
			r := math.Sqrt(float64(x*x + y*y + z*z))
			if r > limit {
				t.Errorf("%q vertex %d: |p| = %v exceeds %v", kind, i/8, r, limit)
				break
			}
		}
	}
}

func TestHalfSphereStaysAboveBase(t *testing.T) {
	data := halfSphereVertices()
	for i := 0; i < len(data); i += 8 {
		if y := data[i+1]; y < -1e-5 {
			t.Fatalf("vertex %d below the base plane: y = %v", i/8, y)
		}
	}
}

func TestConeConvergesToApex(t *testing.T) {
	data := cylinderVertices(0)
	for i := 0; i < len(data); i += 8 {
		x, y, z := data[i], data[i+1], data[i+2]
		if y == 1 && (x != 0 || z != 0) {
			t.Fatalf("vertex %d at height 1 off the apex: (%v, %v)", i/8, x, z)
		}
	}
}

func TestHalfTorusIsHalfTheFullTorus(t *testing.T) {
	full := len(torusVertices(1))
	half := len(torusVertices(0.5))
	if half*2 != full {
		t.Errorf("half torus has %d floats, full has %d, want exactly half", half, full)
	}
}
