package config

import "sync"

// SceneSettings holds scene render configuration
type SceneSettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	fov          float32
}

var globalSceneSettings = &SceneSettings{
	windowWidth:  1000,
	windowHeight: 800,
	fov:          60.0,
}

// GetWindowSize returns the configured window dimensions
func GetWindowSize() (int, int) {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.windowWidth, globalSceneSettings.windowHeight
}

// SetWindowSize sets the window dimensions
func SetWindowSize(width, height int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalSceneSettings.windowWidth = width
	globalSceneSettings.windowHeight = height
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	if fov < 20 {
		fov = 20
	}
	if fov > 120 {
		fov = 120
	}

	globalSceneSettings.fov = fov
}
