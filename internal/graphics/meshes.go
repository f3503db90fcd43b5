package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"scene-studio/pkg/scenescript"
)

// Vertex layout shared by every scene mesh: position xyz, normal xyz,
// uv. Attribute locations 0, 1, 2.
const vertexStride = 8 * 4

// Unit cube centered on the origin, one face at a time, CCW front
// faces, with per-face normals and 0..1 texture coordinates.
var boxVertices = []float32{
	// front (+z)
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// back (-z)
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	// left (-x)
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	// right (+x)
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// top (+y)
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	// bottom (-y)
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
}

// Unit plane in the XZ plane, normal up.
var planeVertices = []float32{
	-1, 0, 1, 0, 1, 0, 0, 0,
	1, 0, 1, 0, 1, 0, 1, 0,
	1, 0, -1, 0, 1, 0, 1, 1,
	1, 0, -1, 0, 1, 0, 1, 1,
	-1, 0, -1, 0, 1, 0, 0, 1,
	-1, 0, 1, 0, 1, 0, 0, 0,
}

type meshBuffer struct {
	vao         uint32
	vertexCount int32
}

// MeshSet is the mesh-drawing capability: one VAO per primitive kind,
// drawn against whatever uniform state is current. Every script mesh
// kind ships built in; Register accepts additional externally built
// geometry.
type MeshSet struct {
	meshes map[scenescript.MeshKind]meshBuffer
}

func NewMeshSet() *MeshSet {
	m := &MeshSet{meshes: make(map[scenescript.MeshKind]meshBuffer)}
	for kind, vertices := range primitiveVertices() {
		m.registerBuiltin(kind, vertices)
	}
	return m
}

// Register associates an externally built VAO with a primitive kind.
// The VAO must follow the shared vertex layout.
func (m *MeshSet) Register(kind scenescript.MeshKind, vao uint32, vertexCount int32) {
	m.meshes[kind] = meshBuffer{vao: vao, vertexCount: vertexCount}
}

// Draw issues the draw call for kind against the current uniform state.
func (m *MeshSet) Draw(kind scenescript.MeshKind) error {
	buf, ok := m.meshes[kind]
	if !ok {
		return fmt.Errorf("no mesh registered for kind %q", kind)
	}
	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, buf.vertexCount)
	return nil
}

func (m *MeshSet) registerBuiltin(kind scenescript.MeshKind, vertices []float32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	m.meshes[kind] = meshBuffer{vao: vao, vertexCount: int32(len(vertices) / 8)}
}
