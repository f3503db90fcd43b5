package graphics

import (
	"math"

	"scene-studio/pkg/scenescript"
)

// Tessellation density for the curved primitives.
const (
	radialSegments = 24
	ringSegments   = 12
)

func sincos(a float64) (float32, float32) {
	s, c := math.Sincos(a)
	return float32(s), float32(c)
}

// vertex appends one interleaved vertex (position, normal, uv).
func vertex(dst []float32, x, y, z, nx, ny, nz, u, v float32) []float32 {
	return append(dst, x, y, z, nx, ny, nz, u, v)
}

// cylinderVertices builds a capped cylinder: radius 1, height 1, base
// on the XZ plane, +Y up. topRadius scales the top ring, so 1 gives a
// straight cylinder, values in (0,1) a tapered one, and 0 a cone (the
// degenerate top ring collapses to the apex and the top cap vanishes).
func cylinderVertices(topRadius float32) []float32 {
	var verts []float32
	// Side normals tilt inward as the top narrows: for a wall going
	// from radius 1 at y=0 to topRadius at y=1 the slope is constant
	// around the circumference.
	slope := 1 - topRadius
	nYScale := 1 / float32(math.Sqrt(float64(1+slope*slope)))

	for i := 0; i < radialSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / radialSegments
		a1 := 2 * math.Pi * float64(i+1) / radialSegments
		s0, c0 := sincos(a0)
		s1, c1 := sincos(a1)
		u0 := float32(i) / radialSegments
		u1 := float32(i+1) / radialSegments

		n0x, n0z := c0*nYScale, s0*nYScale
		n1x, n1z := c1*nYScale, s1*nYScale
		ny := slope * nYScale

		// Side quad (two triangles, collapsing when topRadius is 0).
		verts = vertex(verts, c0, 0, s0, n0x, ny, n0z, u0, 0)
		verts = vertex(verts, c1, 0, s1, n1x, ny, n1z, u1, 0)
		verts = vertex(verts, c1*topRadius, 1, s1*topRadius, n1x, ny, n1z, u1, 1)
		verts = vertex(verts, c1*topRadius, 1, s1*topRadius, n1x, ny, n1z, u1, 1)
		verts = vertex(verts, c0*topRadius, 1, s0*topRadius, n0x, ny, n0z, u0, 1)
		verts = vertex(verts, c0, 0, s0, n0x, ny, n0z, u0, 0)

		// Bottom cap, facing -Y.
		verts = vertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
		verts = vertex(verts, c1, 0, s1, 0, -1, 0, (c1+1)/2, (s1+1)/2)
		verts = vertex(verts, c0, 0, s0, 0, -1, 0, (c0+1)/2, (s0+1)/2)

		if topRadius > 0 {
			// Top cap, facing +Y.
			verts = vertex(verts, 0, 1, 0, 0, 1, 0, 0.5, 0.5)
			verts = vertex(verts, c0*topRadius, 1, s0*topRadius, 0, 1, 0, (c0+1)/2, (s0+1)/2)
			verts = vertex(verts, c1*topRadius, 1, s1*topRadius, 0, 1, 0, (c1+1)/2, (s1+1)/2)
		}
	}
	return verts
}

// sphereVertices builds a unit sphere centered on the origin from
// latitude rings. rings spans the full sphere; halfSphereVertices cuts
// it at the equator.
func sphereVertices(rings int) []float32 {
	var verts []float32
	for r := 0; r < rings; r++ {
		// Latitude from +Y pole downward.
		phi0 := math.Pi * float64(r) / ringSegments
		phi1 := math.Pi * float64(r+1) / ringSegments
		sp0, cp0 := sincos(phi0)
		sp1, cp1 := sincos(phi1)
		v0 := 1 - float32(r)/ringSegments
		v1 := 1 - float32(r+1)/ringSegments

		for i := 0; i < radialSegments; i++ {
			t0 := 2 * math.Pi * float64(i) / radialSegments
			t1 := 2 * math.Pi * float64(i+1) / radialSegments
			st0, ct0 := sincos(t0)
			st1, ct1 := sincos(t1)
			u0 := float32(i) / radialSegments
			u1 := float32(i+1) / radialSegments

			// Unit-sphere positions double as normals.
			ax, ay, az := sp0*ct0, cp0, sp0*st0
			bx, by, bz := sp0*ct1, cp0, sp0*st1
			cx, cy, cz := sp1*ct1, cp1, sp1*st1
			dx, dy, dz := sp1*ct0, cp1, sp1*st0

			verts = vertex(verts, ax, ay, az, ax, ay, az, u0, v0)
			verts = vertex(verts, dx, dy, dz, dx, dy, dz, u0, v1)
			verts = vertex(verts, cx, cy, cz, cx, cy, cz, u1, v1)
			verts = vertex(verts, cx, cy, cz, cx, cy, cz, u1, v1)
			verts = vertex(verts, bx, by, bz, bx, by, bz, u1, v0)
			verts = vertex(verts, ax, ay, az, ax, ay, az, u0, v0)
		}
	}
	return verts
}

// halfSphereVertices builds the upper hemisphere, open at the equator,
// dome resting on the XZ plane.
func halfSphereVertices() []float32 {
	return sphereVertices(ringSegments / 2)
}

// torusVertices builds a torus in the XY plane around the Z axis:
// ring radius 0.75, tube radius 0.25, so the outer edge touches unit
// radius. sweep in (0,1] controls how much of the ring is generated;
// 0.5 gives the half torus.
func torusVertices(sweep float64) []float32 {
	const ringRadius, tubeRadius = 0.75, 0.25
	var verts []float32

	segs := int(float64(radialSegments) * sweep)
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * sweep * float64(i) / float64(segs)
		a1 := 2 * math.Pi * sweep * float64(i+1) / float64(segs)
		sa0, ca0 := sincos(a0)
		sa1, ca1 := sincos(a1)
		u0 := float32(i) / float32(segs)
		u1 := float32(i+1) / float32(segs)

		for j := 0; j < ringSegments; j++ {
			b0 := 2 * math.Pi * float64(j) / ringSegments
			b1 := 2 * math.Pi * float64(j+1) / ringSegments
			sb0, cb0 := sincos(b0)
			sb1, cb1 := sincos(b1)
			v0 := float32(j) / ringSegments
			v1 := float32(j+1) / ringSegments

			// Tube cross-section: cb pushes outward in the ring plane,
			// sb along Z. The normal is that same offset, unit length.
			p := func(ca, sa, cb, sb float32) (x, y, z, nx, ny, nz float32) {
				nx, ny, nz = ca*cb, sa*cb, sb
				x = ca*(ringRadius+tubeRadius*cb)
				y = sa * (ringRadius + tubeRadius*cb)
				z = tubeRadius * sb
				return
			}

			ax, ay, az, anx, any, anz := p(ca0, sa0, cb0, sb0)
			bx, by, bz, bnx, bny, bnz := p(ca1, sa1, cb0, sb0)
			cx, cy, cz, cnx, cny, cnz := p(ca1, sa1, cb1, sb1)
			dx, dy, dz, dnx, dny, dnz := p(ca0, sa0, cb1, sb1)

			verts = vertex(verts, ax, ay, az, anx, any, anz, u0, v0)
			verts = vertex(verts, bx, by, bz, bnx, bny, bnz, u1, v0)
			verts = vertex(verts, cx, cy, cz, cnx, cny, cnz, u1, v1)
			verts = vertex(verts, cx, cy, cz, cnx, cny, cnz, u1, v1)
			verts = vertex(verts, dx, dy, dz, dnx, dny, dnz, u0, v1)
			verts = vertex(verts, ax, ay, az, anx, any, anz, u0, v0)
		}
	}
	return verts
}

// pyramidVertices builds a square pyramid: base 1×1 on the XZ plane
// centered at the origin, apex at (0,1,0).
func pyramidVertices() []float32 {
	apex := [3]float32{0, 1, 0}
	base := [4][3]float32{
		{-0.5, 0, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0, -0.5},
		{-0.5, 0, -0.5},
	}

	var verts []float32
	for i := 0; i < 4; i++ {
		a, b := base[i], base[(i+1)%4]
		nx, ny, nz := faceNormal(a, b, apex)
		verts = vertex(verts, a[0], a[1], a[2], nx, ny, nz, 0, 0)
		verts = vertex(verts, b[0], b[1], b[2], nx, ny, nz, 1, 0)
		verts = vertex(verts, apex[0], apex[1], apex[2], nx, ny, nz, 0.5, 1)
	}
	// Base, facing -Y.
	verts = vertex(verts, base[0][0], 0, base[0][2], 0, -1, 0, 0, 0)
	verts = vertex(verts, base[3][0], 0, base[3][2], 0, -1, 0, 0, 1)
	verts = vertex(verts, base[2][0], 0, base[2][2], 0, -1, 0, 1, 1)
	verts = vertex(verts, base[2][0], 0, base[2][2], 0, -1, 0, 1, 1)
	verts = vertex(verts, base[1][0], 0, base[1][2], 0, -1, 0, 1, 0)
	verts = vertex(verts, base[0][0], 0, base[0][2], 0, -1, 0, 0, 0)
	return verts
}

// prismVertices builds a triangular prism: equilateral cross-section
// in the XY plane, extruded along Z from -0.5 to 0.5, base on y=0.
func prismVertices() []float32 {
	tri := [3][2]float32{
		{-0.5, 0},
		{0.5, 0},
		{0, 0.866},
	}

	var verts []float32
	// Front and back triangles.
	for _, z := range []float32{0.5, -0.5} {
		nz := z * 2
		a, b, c := tri[0], tri[1], tri[2]
		if nz < 0 {
			a, b = b, a
		}
		verts = vertex(verts, a[0], a[1], z, 0, 0, nz, 0, 0)
		verts = vertex(verts, b[0], b[1], z, 0, 0, nz, 1, 0)
		verts = vertex(verts, c[0], c[1], z, 0, 0, nz, 0.5, 1)
	}
	// Three side quads.
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		nx, ny, nz := faceNormal(
			[3]float32{a[0], a[1], 0.5},
			[3]float32{b[0], b[1], 0.5},
			[3]float32{b[0], b[1], -0.5},
		)
		verts = vertex(verts, a[0], a[1], 0.5, nx, ny, nz, 0, 0)
		verts = vertex(verts, b[0], b[1], 0.5, nx, ny, nz, 1, 0)
		verts = vertex(verts, b[0], b[1], -0.5, nx, ny, nz, 1, 1)
		verts = vertex(verts, b[0], b[1], -0.5, nx, ny, nz, 1, 1)
		verts = vertex(verts, a[0], a[1], -0.5, nx, ny, nz, 0, 1)
		verts = vertex(verts, a[0], a[1], 0.5, nx, ny, nz, 0, 0)
	}
	return verts
}

// faceNormal returns the unit normal of the triangle a-b-c (CCW).
func faceNormal(a, b, c [3]float32) (float32, float32, float32) {
	ux, uy, uz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	vx, vy, vz := c[0]-a[0], c[1]-a[1], c[2]-a[2]
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	l := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if l == 0 {
		return 0, 1, 0
	}
	return nx / l, ny / l, nz / l
}

// primitiveVertices maps every mesh kind to its generated geometry.
// Box and plane use the fixed tables; the rest are tessellated.
func primitiveVertices() map[scenescript.MeshKind][]float32 {
	return map[scenescript.MeshKind][]float32{
		scenescript.MeshBox:             boxVertices,
		scenescript.MeshPlane:           planeVertices,
		scenescript.MeshCylinder:        cylinderVertices(1),
		scenescript.MeshTaperedCylinder: cylinderVertices(0.5),
		scenescript.MeshCone:            cylinderVertices(0),
		scenescript.MeshSphere:          sphereVertices(ringSegments),
		scenescript.MeshHalfSphere:      halfSphereVertices(),
		scenescript.MeshPyramid:         pyramidVertices(),
		scenescript.MeshPrism:           prismVertices(),
		scenescript.MeshTorus:           torusVertices(1),
		scenescript.MeshHalfTorus:       torusVertices(0.5),
	}
}
