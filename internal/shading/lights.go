package shading

import "github.com/go-gl/mathgl/mgl32"

// MaxPointLights is the number of point light slots in the shading program.
const MaxPointLights = 5

// DirectionalLight is a light at infinity shining along Direction.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

// PointLight radiates from Position with inverse-quadratic falloff.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	// Attenuation = 1 / (Constant + Linear*d + Quadratic*d*d)
	Constant  float32
	Linear    float32
	Quadratic float32

	Active bool
}

// SpotLight is a point light restricted to a cone around Direction.
// CutOff and OuterCutOff are cosines of the inner and outer cone angles.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32

	Active bool
}

// LightRig holds every light slot the shading program knows about:
// one directional, five point slots, one spot. All slots start inactive
// and contribute nothing until explicitly configured.
type LightRig struct {
	Directional DirectionalLight
	Points      [MaxPointLights]PointLight
	Spot        SpotLight
}

// Attenuation returns the intensity falloff at distance d.
func (l *PointLight) Attenuation(d float32) float32 {
	return 1.0 / (l.Constant + l.Linear*d + l.Quadratic*d*d)
}

// Attenuation returns the intensity falloff at distance d.
func (l *SpotLight) Attenuation(d float32) float32 {
	return 1.0 / (l.Constant + l.Linear*d + l.Quadratic*d*d)
}

// ConeIntensity returns the smooth cutoff factor for a fragment seen at
// cosTheta from the spot axis: 1 inside the inner cone, 0 outside the
// outer cone, linear in between.
func (l *SpotLight) ConeIntensity(cosTheta float32) float32 {
	denom := l.CutOff - l.OuterCutOff
	if denom == 0 {
		if cosTheta >= l.CutOff {
			return 1
		}
		return 0
	}
	t := (cosTheta - l.OuterCutOff) / denom
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
