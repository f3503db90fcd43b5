package scene

import "scene-studio/pkg/scenescript"

// MeshDrawer is the mesh-drawing capability: it issues the GPU draw for
// a primitive kind, consuming whatever uniform state is current. Mesh
// geometry generation lives behind this interface; the scene layer
// never sees vertices.
type MeshDrawer interface {
	Draw(kind scenescript.MeshKind) error
}
