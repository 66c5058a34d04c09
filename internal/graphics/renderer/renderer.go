package renderer

import (
	"fmt"

	"mini-voxel/internal/camera"
	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// sky
var clearColor = mgl32.Vec4{0.53, 0.81, 0.92, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
}

// NewRenderer configures global GL state and initializes every renderable in order.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(width, height),
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// undo the ones that succeeded
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		rd.SetViewport(width, height)
	}
	return r, nil
}

// Render clears the frame and draws every renderable in registration order.
func (r *Renderer) Render(w *world.World, cam *camera.Fly, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	ctx := RenderContext{
		Camera: cam,
		World:  w,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   r.projection.Matrix(),
	}
	for _, rd := range r.renderables {
		rd.Render(ctx)
	}

	// overlays always draw filled
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and every renderable's projection.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection.SetViewport(width, height)
	for _, rd := range r.renderables {
		rd.SetViewport(width, height)
	}
}

func (r *Renderer) Projection() *graphics.Projection {
	return r.projection
}
