// Package game implements the main loop: input, simulation tick, render.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ruddysteph/gl-3D/internal/config"
	"github.com/ruddysteph/gl-3D/internal/engine/camera"
	"github.com/ruddysteph/gl-3D/internal/engine/input"
	"github.com/ruddysteph/gl-3D/internal/engine/noise"
	"github.com/ruddysteph/gl-3D/internal/engine/scene"
	"github.com/ruddysteph/gl-3D/internal/engine/terrain"
	"github.com/ruddysteph/gl-3D/internal/engine/texture"
	"github.com/ruddysteph/gl-3D/internal/engine/window"
	"github.com/ruddysteph/gl-3D/internal/logger"
	"github.com/ruddysteph/gl-3D/pkg/math"
)

const (
	noiseTextureCount = 2
	noiseTextureSize  = 256
)

// Game is the demo instance: window, renderer, camera and the
// generated landscape.
type Game struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.LandscapeRenderer

	heightmap *terrain.Heightmap
	cam       *camera.FlyCamera
	keys      camera.KeyState

	projection    math.Mat4
	width, height int
	mouseY        int
	cycle         float32
	showFPS       bool
}

// New creates the window, generates the landscape and uploads all GL
// resources.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Landscape",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the window.
	g.scene, err = scene.NewLandscapeRenderer()
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating landscape",
		zap.Int("size", cfg.Terrain.Size),
		zap.Float64("roughness", cfg.Terrain.Roughness),
		zap.Int64("seed", seed),
	)

	rng := rand.New(rand.NewSource(seed))
	g.heightmap = terrain.Generate(cfg.Terrain.Size, cfg.Terrain.Size, cfg.Terrain.Roughness, rng)
	g.scene.LoadTerrain(terrain.BuildMesh(g.heightmap))
	g.scene.LoadWater()

	gradient, err := texture.LoadGradientFile(cfg.Terrain.Gradient)
	if err != nil {
		g.scene.Destroy()
		g.window.Close()
		return nil, err
	}
	g.scene.LoadGradient(gradient)
	g.scene.AttachNoise(noise.NewTextures(noiseTextureCount, noiseTextureSize, seed))
	g.scene.SetWireframe(cfg.Graphics.Wireframe)

	g.input = input.New()
	g.cam = camera.NewFlyCamera()
	g.showFPS = cfg.Game.ShowFPS
	g.mouseY = g.height / 2
	g.resize(g.width, g.height)

	logger.Info("landscape ready")
	return g, nil
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			g.handleEvent(event)
		}

		g.update(dt)
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.showFPS {
				logger.Info("fps", zap.Int("count", frameCount))
			} else {
				logger.Debug("fps", zap.Int("count", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases all resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		g.resize(event.Width, event.Height)

	case input.EventMouseMove:
		g.mouseY = event.MouseY

	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_LEFT:
			g.keys.Left = true
		case sdl.SCANCODE_RIGHT:
			g.keys.Right = true
		case sdl.SCANCODE_UP:
			g.keys.Forward = true
		case sdl.SCANCODE_DOWN:
			g.keys.Backward = true
		case sdl.SCANCODE_W:
			g.scene.SetWireframe(!g.scene.Wireframe())
		case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
			g.running = false
		}

	case input.EventKeyUp:
		switch event.Key {
		case sdl.SCANCODE_LEFT:
			g.keys.Left = false
		case sdl.SCANCODE_RIGHT:
			g.keys.Right = false
		case sdl.SCANCODE_UP:
			g.keys.Forward = false
		case sdl.SCANCODE_DOWN:
			g.keys.Backward = false
		}
	}
}

// update advances the cycle phase and integrates the camera.
func (g *Game) update(dt float64) {
	g.cycle += float32(dt)
	g.cam.Tick(dt, g.keys)
}

// render draws the current frame from the camera state.
func (g *Game) render() {
	sxz := g.cfg.Terrain.ScaleXZ
	sy := g.cfg.Terrain.ScaleY

	ground := g.heightmap.Altitude(g.cam.X, g.cam.Z, sxz, sy)
	pitch := float32(g.mouseY-g.height/2) / float32(g.height)

	view := g.cam.ViewMatrix(ground, pitch)
	modelView := view.Mul(math.Scale(sxz, sy, sxz))
	lightPos := view.MulVec4(math.Vec4{100, 100, 0, 1})

	g.scene.Render(g.projection, modelView, lightPos, g.cycle)
}

// resize updates the viewport and the perspective frustum for the new
// window dimensions.
func (g *Game) resize(width, height int) {
	g.width = width
	g.height = height
	g.scene.Resize(width, height)

	half := 0.5 * float32(height) / float32(width)
	g.projection = math.Frustum(-0.5, 0.5, -half, half, 1, 1000)
}
