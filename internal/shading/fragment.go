package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Alpha thresholds shared by the CPU evaluator and the GLSL program.
const (
	// DiscardAlpha is the cutout threshold: a sampled base-texture
	// alpha below this discards the fragment before lighting runs.
	DiscardAlpha = 0.1

	// OverlayAlpha is the threshold above which the overlay texture
	// replaces the base color at a fragment.
	OverlayAlpha = 0.1
)

// Fragment carries the per-fragment inputs to the shading contract.
// TexColor and OverlayColor are the texture samples taken at the
// fragment's uv * UVScale; they are ignored unless the matching
// use-flag is set on the state.
type Fragment struct {
	FragPos      mgl32.Vec3
	Normal       mgl32.Vec3
	TexColor     mgl32.Vec4
	OverlayColor mgl32.Vec4
}

// ShadeFragment resolves the final color for one fragment from the
// current render state. The second return is false when the fragment is
// discarded (cutout transparency). This is the reference form of the
// contract the GLSL program in assets/shaders implements.
func ShadeFragment(st *RenderState, frag Fragment) (mgl32.Vec4, bool) {
	// Cutout test happens before anything else.
	if st.UseTexture && frag.TexColor.W() < DiscardAlpha {
		return mgl32.Vec4{}, false
	}

	base := st.ObjectColor
	if st.UseTexture {
		base = frag.TexColor
	}
	if st.UseTextureOverlay && frag.OverlayColor.W() > OverlayAlpha {
		// Compositing override, not a blend: the overlay color stands
		// in for the base color in every light term. Alpha stays with
		// the base sample.
		base = mgl32.Vec4{frag.OverlayColor.X(), frag.OverlayColor.Y(), frag.OverlayColor.Z(), base.W()}
	}

	if !st.UseLighting {
		return base, true
	}

	normal := frag.Normal.Normalize()
	viewDir := st.ViewPosition.Sub(frag.FragPos).Normalize()
	baseRGB := base.Vec3()

	var total mgl32.Vec3

	if st.Lights.Directional.Active {
		d := &st.Lights.Directional
		lightDir := d.Direction.Mul(-1).Normalize()
		total = total.Add(phongTerms(normal, viewDir, lightDir, baseRGB,
			&st.Material, d.Ambient, d.Diffuse, d.Specular))
	}

	for i := range st.Lights.Points {
		p := &st.Lights.Points[i]
		if !p.Active {
			continue
		}
		toLight := p.Position.Sub(frag.FragPos)
		dist := toLight.Len()
		lightDir := toLight.Normalize()
		contrib := phongTerms(normal, viewDir, lightDir, baseRGB,
			&st.Material, p.Ambient, p.Diffuse, p.Specular)
		total = total.Add(contrib.Mul(p.Attenuation(dist)))
	}

	if st.Lights.Spot.Active {
		s := &st.Lights.Spot
		toLight := s.Position.Sub(frag.FragPos)
		dist := toLight.Len()
		lightDir := toLight.Normalize()
		cosTheta := lightDir.Dot(s.Direction.Mul(-1).Normalize())
		contrib := phongTerms(normal, viewDir, lightDir, baseRGB,
			&st.Material, s.Ambient, s.Diffuse, s.Specular)
		total = total.Add(contrib.Mul(s.Attenuation(dist) * s.ConeIntensity(cosTheta)))
	}

	return mgl32.Vec4{total.X(), total.Y(), total.Z(), base.W()}, true
}

// phongTerms computes ambient + diffuse + specular for one light.
// Ambient and diffuse are modulated by the base color; specular is not.
func phongTerms(normal, viewDir, lightDir, baseRGB mgl32.Vec3, mat *Material,
	ambient, diffuse, specular mgl32.Vec3) mgl32.Vec3 {

	ambientTerm := hadamard(ambient, baseRGB)

	diff := normal.Dot(lightDir)
	if diff < 0 {
		diff = 0
	}
	diffuseTerm := hadamard(hadamard(diffuse.Mul(diff), mat.DiffuseColor), baseRGB)

	reflectDir := reflect(lightDir.Mul(-1), normal)
	spec := viewDir.Dot(reflectDir)
	if spec < 0 {
		spec = 0
	}
	spec = float32(math.Pow(float64(spec), float64(mat.Shininess)))
	specularTerm := hadamard(specular.Mul(spec), mat.SpecularColor)

	return ambientTerm.Add(diffuseTerm).Add(specularTerm)
}

// reflect mirrors incident v about normal n (GLSL reflect semantics).
func reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// hadamard is the component-wise product of two vectors.
func hadamard(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
