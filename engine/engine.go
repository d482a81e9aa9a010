package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/anima-gl/engine/assets"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/platform"
	"github.com/spaghettifunk/anima-gl/engine/renderer/gfx"
	"github.com/spaghettifunk/anima-gl/engine/renderer/opengl"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Engine drives one window, its device context and the game callbacks. All
// methods except Stop must be called from the main goroutine.
type Engine struct {
	currentStage Stage
	gameInstance *Game
	platform     *platform.Platform
	context      *gfx.Context
	shaders      *ShaderLibrary
	watcher      *assets.Watcher
	clock        *core.Clock
	metrics      core.FrameMetrics
	lastTime     float64

	quit     chan struct{}
	quitOnce sync.Once
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	if g.FnRender == nil {
		return nil, errors.New("game has no render function")
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     platform.New(),
		clock:        core.NewClock(),
		quit:         make(chan struct{}),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight, cfg.VSync); err != nil {
		return err
	}

	e.context = opengl.Load(e.platform.ProcAddress)
	e.context.SetViewport(gfx.ViewportFromSize(e.platform.FramebufferSize()))
	e.shaders = NewShaderLibrary(e.context)

	if cfg.HotReload {
		w, err := assets.NewWatcher()
		if err != nil {
			return err
		}
		if err := w.AddRecursive(cfg.ShaderDir); err != nil {
			w.Close()
			return fmt.Errorf("watching %s: %w", cfg.ShaderDir, err)
		}
		e.watcher = w
		core.LogInfo("watching %s for shader changes", cfg.ShaderDir)
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.context, e.shaders); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// Stop asks the run loop to exit after the current frame. Safe to call from
// any goroutine.
func (e *Engine) Stop() {
	e.quitOnce.Do(func() {
		close(e.quit)
	})
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var runErr error
	for !e.stopping() {
		e.platform.PumpMessages()
		if e.platform.ShouldClose() {
			break
		}
		if err := e.frame(); err != nil {
			core.LogError(err.Error())
			runErr = err
			break
		}
	}

	if err := e.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (e *Engine) stopping() bool {
	select {
	case <-e.quit:
		return true
	default:
		return false
	}
}

func (e *Engine) frame() error {
	if w, h, ok := e.platform.Resized(); ok {
		e.context.SetViewport(gfx.ViewportFromSize(w, h))
		if e.gameInstance.FnOnResize != nil {
			if err := e.gameInstance.FnOnResize(uint32(w), uint32(h)); err != nil {
				return err
			}
		}
	}

	e.reloadShaders()

	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime
	e.lastTime = currentTime
	if e.metrics.Update(delta) {
		core.LogDebug("%.0f fps, %.2f ms/frame", e.metrics.FPS(), e.metrics.FrameTime())
	}

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(delta); err != nil {
			return err
		}
	}
	if err := e.gameInstance.FnRender(e.context, e.shaders, delta); err != nil {
		return err
	}
	e.platform.SwapBuffers()
	return nil
}

// reloadShaders drains pending change notifications and rebuilds each
// affected program once.
func (e *Engine) reloadShaders() {
	if e.watcher == nil {
		return
	}
	changed := map[string]struct{}{}
	for drained := false; !drained; {
		select {
		case path, ok := <-e.watcher.Changes():
			if !ok {
				e.watcher = nil
				drained = true
				break
			}
			changed[path] = struct{}{}
		default:
			drained = true
		}
	}
	for path := range changed {
		// failures keep the previous program and are already logged
		_, _ = e.shaders.Reload(path)
	}
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
		e.watcher = nil
	}
	if e.gameInstance.FnShutdown != nil && e.context != nil {
		errs = append(errs, e.gameInstance.FnShutdown(e.context))
	}
	if e.shaders != nil {
		e.shaders.Shutdown()
	}
	errs = append(errs, e.platform.Shutdown())
	return errors.Join(errs...)
}
