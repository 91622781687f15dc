// Package app wires the window, renderer and viewer into the main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/prismview/internal/config"
	"github.com/Faultbox/prismview/internal/engine/debug"
	"github.com/Faultbox/prismview/internal/engine/input"
	"github.com/Faultbox/prismview/internal/engine/renderer"
	"github.com/Faultbox/prismview/internal/engine/window"
	"github.com/Faultbox/prismview/internal/logger"
	"github.com/Faultbox/prismview/internal/viewer"
)

// App is the running viewer application.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool
	shotDue bool // capture after the next draw

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	viewer      *viewer.Viewer
	screenshots *debug.ScreenshotCapture
}

// New creates the window, GL resources and viewer state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("faces", cfg.Mesh.Faces),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:          fbWidth,
		Height:         fbHeight,
		ClearColor:     cfg.Render.ClearColor,
		VertexShader:   cfg.Render.VertexShader,
		FragmentShader: cfg.Render.FragmentShader,
		Texture:        cfg.Render.Texture,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// The virtual cursor starts at the window centre.
	cursorX, cursorY := float64(cfg.Graphics.Width)/2, float64(cfg.Graphics.Height)/2
	a.input = input.New(cursorX, cursorY)
	a.viewer = viewer.New(viewerSettings(cfg), fbWidth, fbHeight, cursorX, cursorY, a.renderer)
	a.screenshots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "prismview", cfg.Screenshot.Format)

	a.renderer.CheckErrors("init")
	a.log.Info("initialized successfully")
	return a, nil
}

// Run runs the main loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true
	clock := newFrameClock(time.Now(), a.config.Graphics.FPSLimit)

	a.log.Info("starting main loop")

	for a.running {
		dt := clock.tick(time.Now())

		// 1. Process input
		if a.input.Update() {
			a.running = false
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		if !a.running {
			break
		}

		// 2. Update viewer state
		a.viewer.Update(dt)

		// 3. Render
		a.renderer.Draw()
		a.renderer.CheckErrors("frame")
		if a.shotDue {
			a.screenshot()
			a.shotDue = false
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		if wait := clock.idle(time.Now()); wait > 0 {
			time.Sleep(wait)
		}

		if fps, ok := clock.frameDone(time.Now()); ok {
			a.log.Debug("fps", zap.Int("count", fps), zap.Float32("dt_ms", dt))
			if a.config.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d FPS - %d faces - %s",
					a.config.Graphics.Title, fps, a.viewer.Faces(), a.viewer.Mode()))
			}
		}
	}

	return nil
}

// handle applies one input event.
func (a *App) handle(ev input.Event) {
	switch route(ev, a.viewer) {
	case cmdQuit:
		a.running = false
	case cmdResize:
		w, h := a.window.DrawableSize()
		a.log.Debug("window resized",
			zap.Int("width", ev.Width),
			zap.Int("height", ev.Height),
			zap.Int("fb_width", w),
			zap.Int("fb_height", h),
			zap.Float64("pixel_scale", pixelScale(ev, w)),
		)
		a.renderer.Resize(w, h)
		a.viewer.HandleResize(w, h)
	case cmdScreenshot:
		a.shotDue = true
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up application resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
