package engine

import (
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func(ctx *gfx.Context, shaders *ShaderLibrary) error
type Update func(deltaTime float64) error
type Render func(ctx *gfx.Context, shaders *ShaderLibrary, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func(ctx *gfx.Context) error
