package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device uploads chunk geometry to the GPU and issues draws against it.
// All calls must happen on the thread that owns the GL context.
type Device interface {
	// UploadMesh copies interleaved pos.xyz+color.rgb vertices and triangle indices.
	UploadMesh(vertices []float32, indices []uint32) MeshBuffer
	// DrawMesh draws buf with program bound and model uploaded to the "model" uniform.
	DrawMesh(program uint32, model mgl32.Mat4, buf MeshBuffer)
}

// MeshBuffer is a GPU-resident vertex+index pair owned by exactly one chunk.
type MeshBuffer interface {
	IndexCount() int32
	// Release frees the GPU objects. Calling it twice is a no-op.
	Release()
}

const vertexStride = 6 * 4 // pos.xyz + color.rgb, float32

// GLDevice is the OpenGL 4.1 core implementation of Device.
type GLDevice struct {
	// cached "model" uniform location per program
	modelLocs map[uint32]int32
}

func NewGLDevice() *GLDevice {
	return &GLDevice{modelLocs: make(map[uint32]int32)}
}

type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func (m *glMesh) IndexCount() int32 { return m.indexCount }

func (m *glMesh) Release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	m.indexCount = 0
}

// UploadMesh creates a VAO with position at location 0 and colour at location 1.
func (d *GLDevice) UploadMesh(vertices []float32, indices []uint32) MeshBuffer {
	m := &glMesh{indexCount: int32(len(indices))}
	if len(indices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

func (d *GLDevice) DrawMesh(program uint32, model mgl32.Mat4, buf MeshBuffer) {
	m, ok := buf.(*glMesh)
	if !ok || m.vao == 0 || m.indexCount == 0 {
		return
	}

	gl.UseProgram(program)
	loc, ok := d.modelLocs[program]
	if !ok {
		loc = uniformLocation(program, "model")
		d.modelLocs[program] = loc
	}
	gl.UniformMatrix4fv(loc, 1, false, &model[0])

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}
