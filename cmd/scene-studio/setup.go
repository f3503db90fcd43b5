package main

import (
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"scene-studio/internal/config"
	"scene-studio/internal/scene"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "scene-studio", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)

	return window, nil
}

// Textures of the desk scene, loaded in slot order. Tags listed as edge
// decals map edge-exact onto a single face and clamp instead of repeat.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"keyboard.png", "keyboard"},
	{"thinkpad.png", "thinkpad"},
	{"circular-brushed-gold-texture.jpg", "hinge"},
	{"wood1.jpg", "wood1"},
	{"wood2.jpg", "wood2"},
	{"couch.jpg", "couch"},
	{"zipper.png", "zipper"},
	{"panda.png", "panda"},
	{"rug.jpg", "rug"},
	{"screen.jpg", "screen"},
	{"laptoptexture.jpg", "pctexture"},
	{"i7logo.jpg", "i7"},
	{"suitcase.jpg", "suitcase"},
	{"window.png", "window"},
	{"rusticwood.jpg", "rusticwood"},
	{"whitewood.jpg", "whitewood"},
}

var edgeDecalTags = []string{"panda", "thinkpad"}

// prepareScene loads textures, binds them to their units, defines the
// material set, and configures the lights. A texture that fails to load
// is logged and skipped; draws referencing its tag degrade to flat
// color for the rest of the run.
func prepareScene(m *scene.Manager) {
	m.Textures.SetEdgeDecals(edgeDecalTags...)
	for _, t := range sceneTextures {
		path := filepath.Join("assets", "textures", t.file)
		if err := m.Textures.LoadTexture(path, t.tag); err != nil {
			log.Printf("texture load skipped: %v", err)
		}
	}
	m.Textures.BindAll()

	m.Materials.DefineObjectMaterials()
	m.SetupSceneLights()
}
