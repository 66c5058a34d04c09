package game

import (
	"fmt"
	"strings"
	"time"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	overlayFontPixels = 16
	overlayLineStep   = 18
	overlayTopN       = 6
)

// OverlayStats is everything the debug overlay prints for one frame.
type OverlayStats struct {
	FPS          int
	FrameTime    time.Duration
	Position     mgl32.Vec3
	ChunkX       int
	ChunkZ       int
	Chunks       int
	Pending      int
	Queued       int
	Faces        int
	Seed         int64
	Wireframe    bool
	Target       string
	TopProfiling string
}

// OverlayLines formats the overlay text, one entry per screen line.
func OverlayLines(s OverlayStats) []string {
	lines := []string{
		fmt.Sprintf("FPS: %d (%s)", s.FPS, profiling.FormatMs(s.FrameTime)),
		fmt.Sprintf("Pos: %.2f, %.2f, %.2f", s.Position.X(), s.Position.Y(), s.Position.Z()),
		fmt.Sprintf("Chunk: %d, %d", s.ChunkX, s.ChunkZ),
		fmt.Sprintf("Chunks: %d loaded, %d pending, %d queued", s.Chunks, s.Pending, s.Queued),
		fmt.Sprintf("Faces: %d", s.Faces),
		fmt.Sprintf("Seed: %d", s.Seed),
	}
	if s.Target != "" {
		lines = append(lines, "Target: "+s.Target)
	}
	if s.Wireframe {
		lines = append(lines, "Wireframe")
	}
	if s.TopProfiling != "" {
		for _, line := range strings.Split(s.TopProfiling, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0ms") {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// Overlay is the F3 debug text layer.
type Overlay struct {
	text    *graphics.TextRenderer
	visible bool

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
	lastFrame    time.Time
	frameTime    time.Duration
	wireframe    func() bool
}

// NewOverlay creates a hidden overlay. wireframe reports the current polygon mode.
func NewOverlay(wireframe func() bool) *Overlay {
	return &Overlay{wireframe: wireframe}
}

func (o *Overlay) Init() error {
	atlas, err := graphics.BuildGlyphAtlas(overlayFontPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	tr, err := graphics.NewTextRenderer(atlas, DefaultWidth, DefaultHeight)
	if err != nil {
		return fmt.Errorf("overlay text renderer: %w", err)
	}
	o.text = tr
	o.lastFPSCheck = time.Now()
	o.lastFrame = time.Now()
	return nil
}

// Toggle shows or hides the overlay and returns the new state.
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

func (o *Overlay) Visible() bool { return o.visible }

func (o *Overlay) Render(ctx renderer.RenderContext) {
	now := time.Now()
	o.frameTime = now.Sub(o.lastFrame)
	o.lastFrame = now
	o.frames++
	if now.Sub(o.lastFPSCheck) >= time.Second {
		o.currentFPS = o.frames
		o.frames = 0
		o.lastFPSCheck = now
	}

	if !o.visible || ctx.World == nil || ctx.Camera == nil {
		return
	}
	defer profiling.Track("renderer.overlay")()

	pos := ctx.Camera.Position()
	cx, cz := world.ChunkCoordAt(pos)
	stats := OverlayStats{
		FPS:          o.currentFPS,
		FrameTime:    o.frameTime,
		Position:     pos,
		ChunkX:       cx,
		ChunkZ:       cz,
		Chunks:       ctx.World.Len(),
		Pending:      ctx.World.Pending(),
		Queued:       ctx.World.Queued(),
		Faces:        ctx.World.FaceCount(),
		Seed:         ctx.World.Seed(),
		Wireframe:    o.wireframe != nil && o.wireframe(),
		TopProfiling: profiling.TopN(overlayTopN),
	}
	if hit := physics.Raycast(pos, ctx.Camera.Front(), physics.MinReachDistance, physics.MaxReachDistance, ctx.World); hit.Hit {
		p := hit.HitPosition
		stats.Target = fmt.Sprintf("%s at %d, %d, %d", hit.Block, p[0], p[1], p[2])
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	o.text.RenderLines(OverlayLines(stats), 10, 24, overlayLineStep, 1.0, mgl32.Vec3{1, 1, 1})
}

func (o *Overlay) SetViewport(width, height int) {
	if o.text != nil {
		o.text.SetViewport(width, height)
	}
}

func (o *Overlay) Dispose() {
	if o.text != nil {
		o.text.Dispose()
		o.text = nil
	}
}
