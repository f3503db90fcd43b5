package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/shading"
)

// SetupSceneLights populates the fixed light slots for the desk scene
// and enables the lighting path. Re-invocation overwrites the previous
// configuration; slots not set here stay inactive.
func (m *Manager) SetupSceneLights() {
	m.EnableLighting(true)
	rig := &m.State.Lights

	// Soft fill from above, standing in for sky light through the
	// window wall.
	rig.Directional = shading.DirectionalLight{
		Direction: mgl32.Vec3{0.4, -1.0, -0.3},
		Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		Diffuse:   mgl32.Vec3{0.15, 0.15, 0.15},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Active:    true,
	}

	// Outdoor light source beyond the window.
	rig.Points[0] = shading.PointLight{
		Position:  mgl32.Vec3{-110, 50, 20},
		Ambient:   mgl32.Vec3{0.7, 0.7, 0.7},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Constant:  1.0,
		Linear:    0.013,
		Quadratic: 0.002,
		Active:    true,
	}

	// Two warm recess lights centered above the room.
	rig.Points[1] = shading.PointLight{
		Position:  mgl32.Vec3{30, 30, 0},
		Ambient:   mgl32.Vec3{0.105, 0.084, 0.07},
		Diffuse:   mgl32.Vec3{0.175, 0.14, 0.105},
		Specular:  mgl32.Vec3{0.105, 0.07, 0.056},
		Constant:  0.5,
		Linear:    0.015,
		Quadratic: 0.002,
		Active:    true,
	}
	rig.Points[2] = shading.PointLight{
		Position:  mgl32.Vec3{0, 50, 0},
		Ambient:   mgl32.Vec3{0.105, 0.084, 0.07},
		Diffuse:   mgl32.Vec3{0.175, 0.14, 0.105},
		Specular:  mgl32.Vec3{0.105, 0.07, 0.056},
		Constant:  0.5,
		Linear:    0.015,
		Quadratic: 0.002,
		Active:    true,
	}

	// Narrow reading spot aimed down at the desk surface.
	rig.Spot = shading.SpotLight{
		Position:    mgl32.Vec3{0, 20, 5},
		Direction:   mgl32.Vec3{0, -1, -0.2},
		Ambient:     mgl32.Vec3{0.0, 0.0, 0.0},
		Diffuse:     mgl32.Vec3{0.8, 0.78, 0.7},
		Specular:    mgl32.Vec3{0.6, 0.6, 0.6},
		Constant:    1.0,
		Linear:      0.02,
		Quadratic:   0.001,
		CutOff:      cosDeg(12.5),
		OuterCutOff: cosDeg(17.5),
		Active:      true,
	}
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
