// Package opengl binds the gfx device surface to a real OpenGL 4.5 core
// context through go-gl.
package opengl

import (
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
)

// Load binds the OpenGL function table with loader and returns a fresh
// context. It must run on the thread that owns the current GL context.
// There is no way to continue without a device, so a failed bind aborts
// the process.
func Load(loader gfx.ProcLoader) *gfx.Context {
	if err := gl.InitWithProcAddrFunc(loader); err != nil {
		core.LogFatal("failed to bind OpenGL functions: %s", err)
	}
	core.LogInfo("OpenGL %s, GLSL %s, %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))
	return gfx.NewContext(Device{})
}
