package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"scene-studio/internal/config"
	"scene-studio/internal/graphics"
	"scene-studio/internal/profiling"
	"scene-studio/internal/registry"
	"scene-studio/internal/scene"
	"scene-studio/pkg/scenescript"
)

func init() { runtime.LockOSThread() }

func main() {
	scriptName := flag.String("script", "", "scene script name under assets/scripts (empty = built-in desk scene)")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	textures := registry.NewTextureRegistry(graphics.GLUploader{})
	materials := registry.NewMaterialLibrary()
	meshes := graphics.NewMeshSet()
	manager := scene.NewManager(textures, materials, meshes)

	width, height := config.GetWindowSize()
	renderer, err := graphics.NewRenderer(width, height, manager)
	if err != nil {
		panic(err)
	}
	renderer.Camera().FOV = config.GetFOV()

	prepareScene(manager)
	defer textures.ReleaseAll()

	script := scenescript.DefaultScript()
	if *scriptName != "" {
		loader := scenescript.NewLoader("assets")
		script, err = loader.LoadScript(*scriptName)
		if err != nil {
			log.Printf("falling back to built-in scene: %v", err)
			script = scenescript.DefaultScript()
		}
	}

	for !window.ShouldClose() {
		profiling.ResetFrame()
		frameStart := time.Now()

		glfw.PollEvents()
		renderer.RenderScript(script)
		window.SwapBuffers()

		if d := time.Since(frameStart); d > 33*time.Millisecond {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}
	}
}
