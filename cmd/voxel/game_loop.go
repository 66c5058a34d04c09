package main

import (
	"log"
	"time"

	"mini-voxel/internal/camera"
	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/input"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 50 * time.Millisecond

// movement key bindings in camera terms
var moveActions = []struct {
	action input.Action
	dir    camera.Movement
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// GameLoop manages the main loop state
type GameLoop struct {
	window     *glfw.Window
	c          *GameComponents
	fpsLimiter *game.FPSLimiter
	lastTime   time.Time
}

func NewGameLoop(window *glfw.Window, c *GameComponents) *GameLoop {
	return &GameLoop{
		window:     window,
		c:          c,
		fpsLimiter: game.NewFPSLimiter(),
		lastTime:   time.Now(),
	}
}

// Run ticks until the window is asked to close.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.processInput(float32(dt))

	gl.c.World.Update(gl.c.Camera.Position(), config.GetRenderDistance())
	residentChunks.Store(int64(gl.c.World.Len()))

	gl.c.Renderer.Render(gl.c.World, gl.c.Camera, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	gl.c.Input.PostUpdate()

	if d := time.Since(now); d > slowFrame && config.GetVerbose() {
		log.Printf("slow frame: %v. top tasks: %s", d, profiling.TopN(5))
	}

	gl.fpsLimiter.Wait()
}

func (gl *GameLoop) processInput(dt float32) {
	im := gl.c.Input

	if im.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
		return
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframe()
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		gl.c.Overlay.Toggle()
	}

	cam := gl.c.Camera
	cam.Sprinting = im.IsActive(input.ActionSprint)
	for _, m := range moveActions {
		if im.IsActive(m.action) {
			cam.ProcessKeyboard(m.dir, dt)
		}
	}

	if dx, dy := im.ConsumeMouseDelta(); dx != 0 || dy != 0 {
		cam.ProcessMouse(dx, dy, true)
	}
}
