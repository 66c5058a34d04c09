package main

import (
	"log"

	"mini-voxel/internal/camera"
	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/input"
	"mini-voxel/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var spawn = mgl32.Vec3{8, 100, 8}

// GameComponents holds all the initialized game components
type GameComponents struct {
	Renderer *renderer.Renderer
	Overlay  *game.Overlay
	World    *world.World
	Camera   *camera.Fly
	Input    *input.Manager
}

func setupGame(window *glfw.Window) (*GameComponents, error) {
	overlay := game.NewOverlay(config.GetWireframe)

	fbw, fbh := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbw, fbh,
		game.NewWorldLayer(),
		game.NewCrosshair(),
		overlay,
	)
	if err != nil {
		return nil, err
	}

	gameWorld := newWorld(graphics.NewGLDevice())

	im := input.NewManager()
	im.Attach(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	return &GameComponents{
		Renderer: r,
		Overlay:  overlay,
		World:    gameWorld,
		Camera:   camera.NewFly(spawn),
		Input:    im,
	}, nil
}

func newWorld(dev graphics.Device) *world.World {
	seed := config.GetSeed()
	gen, ok := world.NewGenerator(config.GetGenerator(), seed)
	if !ok {
		log.Printf("unknown generator %q, using sine", config.GetGenerator())
	}

	opts := []world.Option{
		world.WithDevice(dev),
		world.WithGenerator(gen),
		world.WithInitialRadius(config.GetInitialRadius()),
	}
	if config.GetAsync() {
		opts = append(opts, world.WithAsyncStreaming(config.GetWorkers()))
	}
	return world.New(seed, opts...)
}

// Dispose releases GPU resources. Must run on the main thread before the
// context is destroyed.
func (c *GameComponents) Dispose() {
	c.World.Close()
	c.Renderer.Dispose()
}
