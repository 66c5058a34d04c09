package game

import (
	"fmt"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
)

// WorldLayer draws the loaded chunks with the flat-colour chunk shader.
type WorldLayer struct {
	shader *graphics.Shader
}

func NewWorldLayer() *WorldLayer {
	return &WorldLayer{}
}

func (l *WorldLayer) Init() error {
	s, err := graphics.NewShader(graphics.ChunkVertexShader, graphics.ChunkFragmentShader)
	if err != nil {
		return fmt.Errorf("chunk shader: %w", err)
	}
	l.shader = s
	return nil
}

func (l *WorldLayer) Render(ctx renderer.RenderContext) {
	if ctx.World == nil {
		return
	}
	l.shader.Use()
	l.shader.SetMatrix4("projection", &ctx.Proj[0])
	l.shader.SetMatrix4("view", &ctx.View[0])
	ctx.World.Render(l.shader.ID)
}

func (l *WorldLayer) SetViewport(width, height int) {}

func (l *WorldLayer) Dispose() {
	if l.shader != nil {
		l.shader.Delete()
		l.shader = nil
	}
}
