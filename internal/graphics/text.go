package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX, AtlasY float32
	Width, Height  float32
	// Offset from the pen position on the baseline
	BearingX, BearingY float32
	Advance            int
}

// GlyphAtlas is the CPU side of a baked font: an alpha image and per-rune metrics.
type GlyphAtlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
}

const atlasWidth = 512

// BuildGlyphAtlas rasterises printable ASCII from the embedded Go Mono face.
func BuildGlyphAtlas(pixels int) (*GlyphAtlas, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const padding = 1
	type baked struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}

	// First pass: rasterise and row-pack to find the atlas height
	var glyphs []baked
	offsetX, offsetY, rowH := 0, 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, baked{r, dr, mask, maskp, advance})
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowH + padding
			rowH = 0
		}
		offsetX += dr.Dx() + padding
		rowH = max(rowH, dr.Dy())
	}
	atlasHeight := offsetY + rowH + padding

	atlas := &GlyphAtlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight)),
		Glyphs: make(map[rune]Glyph, len(glyphs)),
	}

	// Second pass: copy into the atlas and record metrics
	offsetX, offsetY, rowH = 0, 0, 0
	for _, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowH + padding
			rowH = 0
		}
		if gw > 0 && gh > 0 {
			draw.Draw(atlas.Image, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
		offsetX += gw + padding
		rowH = max(rowH, gh)
	}

	return atlas, nil
}

// Measure returns the width and tallest glyph height of text at the given scale.
func (a *GlyphAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		width += float32(g.Advance) * scale
		maxH = max(maxH, g.Height*scale)
	}
	return width, maxH
}

// Quads returns two triangles per glyph as vec4(x, y, u, v), baseline at y.
func (a *GlyphAtlas) Quads(text string, x, y, scale float32) []float32 {
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	out := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/w, g.AtlasY/h
			u1, v1 := (g.AtlasX+g.Width)/w, (g.AtlasY+g.Height)/h
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return out
}

// TextRenderer draws screen-space text from a GlyphAtlas uploaded as a GL_RED texture.
type TextRenderer struct {
	atlas      *GlyphAtlas
	shader     *Shader
	texture    uint32
	vao, vbo   uint32
	projection mgl32.Mat4
}

func NewTextRenderer(atlas *GlyphAtlas, width, height int) (*TextRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid glyph atlas")
	}
	shader, err := NewShader(TextVertexShader, TextFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}
	tr := &TextRenderer{atlas: atlas, shader: shader}
	tr.SetViewport(width, height)

	gl.GenTextures(1, &tr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	img := atlas.Image
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return tr, nil
}

// SetViewport resets the pixel-space orthographic projection (origin top-left).
func (tr *TextRenderer) SetViewport(width, height int) {
	tr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines starting at (x, yStart), each lineStep pixels below the last.
func (tr *TextRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		verts = append(verts, tr.atlas.Quads(line, x, y, scale)...)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	tr.shader.Use()
	tr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	tr.shader.SetMatrix4("projection", &tr.projection[0])
	tr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	// orphan, then fill
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (tr *TextRenderer) Dispose() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
	}
	if tr.texture != 0 {
		gl.DeleteTextures(1, &tr.texture)
	}
	tr.shader.Delete()
}
