package game

import (
	"fmt"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var crosshairVertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Crosshair draws a small cross at the screen centre.
type Crosshair struct {
	shader      *graphics.Shader
	vao, vbo    uint32
	aspectRatio float32
}

func NewCrosshair() *Crosshair {
	return &Crosshair{aspectRatio: 1}
}

func (c *Crosshair) Init() error {
	s, err := graphics.NewShader(graphics.CrosshairVertexShader, graphics.CrosshairFragmentShader)
	if err != nil {
		return fmt.Errorf("crosshair shader: %w", err)
	}
	c.shader = s

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(crosshairVertices)*4, gl.Ptr(crosshairVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.crosshair")()
	gl.Disable(gl.DEPTH_TEST)
	c.shader.Use()
	c.shader.SetFloat("aspectRatio", c.aspectRatio)
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(crosshairVertices)/2))
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Crosshair) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.aspectRatio = float32(width) / float32(height)
	}
}

func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
