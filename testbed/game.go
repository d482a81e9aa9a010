/*
Testbed draws a spinning, colored quad through the typed access layer. It
exercises both draw paths: the quad goes through DrawElements and a small
marker triangle through DrawArrays.
*/
package testbed

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/anima-gl/engine"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
)

const basicShader = "basic"

type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

type TestGame struct {
	*engine.Game
}

type gameState struct {
	elapsed float64
	width   uint32
	height  uint32

	quad    *gfx.Buffer[Vertex]
	indices *gfx.Buffer[uint16]
	marker  *gfx.Buffer[Vertex]
}

func NewTestGame(cfg *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State: &gameState{
				width:  cfg.StartWidth,
				height: cfg.StartHeight,
			},
		},
	}
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown
	return tg
}

func (g *TestGame) Initialize(ctx *gfx.Context, shaders *engine.ShaderLibrary) error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.State.(*gameState)

	dir := g.ApplicationConfig.ShaderDir
	if _, err := shaders.Load(basicShader, filepath.Join(dir, "basic.vert"), filepath.Join(dir, "basic.frag")); err != nil {
		return err
	}

	state.quad = gfx.NewBuffer(ctx, []Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Color: mgl32.Vec3{1, 1, 0}},
	})
	state.indices = gfx.NewBuffer(ctx, []uint16{0, 1, 2, 2, 3, 0})
	state.marker = gfx.NewBuffer(ctx, []Vertex{
		{Position: mgl32.Vec3{-0.95, -0.95, 0}, Color: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{-0.85, -0.95, 0}, Color: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{-0.9, -0.85, 0}, Color: mgl32.Vec3{1, 1, 1}},
	}, gfx.WithUsage(gfx.DynamicDraw))

	core.LogInfo("context %s ready, viewport %s", ctx.ID(), ctx.Viewport())
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.elapsed += deltaTime
	return nil
}

func (g *TestGame) Render(ctx *gfx.Context, shaders *engine.ShaderLibrary, deltaTime float64) error {
	state := g.State.(*gameState)

	// the library may have swapped the program after a reload
	program, err := shaders.Program(basicShader)
	if err != nil {
		return err
	}

	ctx.Clear(0.1, 0.1, 0.12, 1)

	aspect := float32(1)
	if state.height > 0 {
		aspect = float32(state.width) / float32(state.height)
	}
	projection := mgl32.Ortho2D(-aspect, aspect, -1, 1)
	rotation := mgl32.HomogRotate3DZ(float32(state.elapsed))

	if err := program.SetUniform(ctx, "u_time", float32(state.elapsed)); err != nil {
		return err
	}
	if err := program.SetUniform(ctx, "u_transform", projection.Mul4(rotation)); err != nil {
		return err
	}
	gfx.DrawElements(ctx, gfx.Triangles, program, state.quad, state.indices)

	if err := program.SetUniform(ctx, "u_transform", mgl32.Ident4()); err != nil {
		return err
	}
	gfx.DrawArrays(ctx, gfx.Triangles, program, state.marker)
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown(ctx *gfx.Context) error {
	core.LogDebug("TestGame Shutdown fn.... %d vertex formats cached", ctx.FormatCount())
	return nil
}
