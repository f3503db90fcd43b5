package graphics

import (
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"scene-studio/internal/profiling"
	"scene-studio/internal/scene"
	"scene-studio/pkg/scenescript"
)

// Shader file paths
const (
	ShadersDir = "assets/shaders"

	SceneVertShader = "scene.vert"
	SceneFragShader = "scene.frag"
)

// Renderer drives the per-frame pipeline: for each draw record it
// composes the transform, distributes shading parameters, flushes the
// uniform state, and issues the draw.
type Renderer struct {
	sceneShader *Shader
	camera      *Camera
	manager     *scene.Manager
}

func NewRenderer(width, height int, manager *scene.Manager) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)

	vertPath := filepath.Join(ShadersDir, SceneVertShader)
	fragPath := filepath.Join(ShadersDir, SceneFragShader)
	sceneShader, err := NewShader(vertPath, fragPath)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		sceneShader: sceneShader,
		camera:      NewCamera(width, height),
		manager:     manager,
	}, nil
}

// Camera returns the scene viewpoint for adjustment at setup.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// RenderScript clears the frame and replays every draw record through
// the scene manager. Unresolved texture or material tags degrade that
// record's appearance and are logged; they never abort the frame.
func (r *Renderer) RenderScript(script *scenescript.Script) {
	defer profiling.Track("renderer.RenderScript")()

	gl.ClearColor(0.1, 0.1, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.sceneShader.Use()
	r.manager.SetViewProjection(
		r.camera.GetViewMatrix(),
		r.camera.GetProjectionMatrix(),
		r.camera.Position,
	)

	for i := range script.Records {
		r.drawRecord(script, &script.Records[i])
	}
}

func (r *Renderer) drawRecord(script *scenescript.Script, rec *scenescript.Record) {
	m := r.manager

	m.SetTransformations(
		mgl32.Vec3{rec.Scale[0], rec.Scale[1], rec.Scale[2]},
		rec.Rotation[0], rec.Rotation[1], rec.Rotation[2],
		mgl32.Vec3{rec.Position[0], rec.Position[1], rec.Position[2]},
	)

	// SetShaderColor clears the texture flag, so color always goes
	// first and the texture tag re-enables sampling afterwards.
	m.SetShaderColor(rec.Color[0], rec.Color[1], rec.Color[2], rec.Color[3])
	if rec.Texture != "" {
		if err := m.SetShaderTexture(rec.Texture); err != nil {
			log.Printf("script %q record: %v", script.Name, err)
		}
	}
	if rec.Overlay != "" {
		if err := m.SetShaderOverlayTexture(rec.Overlay); err != nil {
			log.Printf("script %q record: %v", script.Name, err)
		}
	} else {
		m.ClearOverlayTexture()
	}
	if rec.Material != "" {
		if err := m.SetShaderMaterial(rec.Material); err != nil {
			log.Printf("script %q record: %v", script.Name, err)
		}
	}
	m.SetTextureUVScale(rec.UVScale[0], rec.UVScale[1])

	r.sceneShader.ApplyState(m.State)

	if rec.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	if err := m.DrawMesh(rec.Mesh); err != nil {
		log.Printf("script %q record: %v", script.Name, err)
	}
	if rec.Blend {
		gl.Disable(gl.BLEND)
	}
}
