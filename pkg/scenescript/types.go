package scenescript

// MeshKind names one of the primitive meshes the drawing capability
// exposes. The values double as the vocabulary of script files.
type MeshKind string

const (
	MeshBox             MeshKind = "box"
	MeshPlane           MeshKind = "plane"
	MeshCylinder        MeshKind = "cylinder"
	MeshCone            MeshKind = "cone"
	MeshSphere          MeshKind = "sphere"
	MeshHalfSphere      MeshKind = "half_sphere"
	MeshPyramid         MeshKind = "pyramid"
	MeshPrism           MeshKind = "prism"
	MeshTaperedCylinder MeshKind = "tapered_cylinder"
	MeshTorus           MeshKind = "torus"
	MeshHalfTorus       MeshKind = "half_torus"
)

// Valid reports whether k names a known primitive.
func (k MeshKind) Valid() bool {
	switch k {
	case MeshBox, MeshPlane, MeshCylinder, MeshCone, MeshSphere,
		MeshHalfSphere, MeshPyramid, MeshPrism, MeshTaperedCylinder,
		MeshTorus, MeshHalfTorus:
		return true
	}
	return false
}

// Record is one draw of the scene script: which primitive, where it
// goes, and how it is colored, textured, and lit. The script is pure
// data replayed by a generic render loop.
type Record struct {
	Mesh MeshKind `json:"mesh"`

	Scale    [3]float32 `json:"scale"`
	Rotation [3]float32 `json:"rotation"` // degrees about X, Y, Z
	Position [3]float32 `json:"position"`

	// Color is the flat object color; also modulates texture lighting
	// terms. Omitted means opaque white.
	Color *[4]float32 `json:"color"`

	Texture  string `json:"texture"`  // texture tag, "" = flat color
	Overlay  string `json:"overlay"`  // overlay texture tag, "" = none
	Material string `json:"material"` // material tag, "" = default

	// UVScale multiplies texture coordinates. Omitted means (1,1).
	UVScale *[2]float32 `json:"uvScale"`

	// Blend renders this record with alpha blending enabled, for
	// translucent surfaces like glass.
	Blend bool `json:"blend"`
}

// Script is an ordered list of draw records.
type Script struct {
	Name    string   `json:"name"`
	Records []Record `json:"records"`
}
