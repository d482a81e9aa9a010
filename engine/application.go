package engine

import (
	"github.com/spaghettifunk/anima-gl/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string        `toml:"name"`
	LogLevel core.LogLevel `toml:"log_level"`
	// Wait for vertical sync on buffer swaps.
	VSync bool `toml:"vsync"`
	// Directory holding the GLSL sources of the application.
	ShaderDir string `toml:"shader_dir"`
	// Rebuild programs when their sources change on disk.
	HotReload bool `toml:"hot_reload"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "anima-gl",
		LogLevel:    core.LogLevelInfo,
		VSync:       true,
		ShaderDir:   "assets/shaders",
		HotReload:   false,
	}
}
