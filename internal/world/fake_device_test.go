package world

import (
	"mini-voxel/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice records uploads and draws instead of talking to OpenGL.
type fakeDevice struct {
	uploads int
	draws   []drawCall
	live    map[*fakeBuffer]struct{}
}

type drawCall struct {
	program uint32
	model   mgl32.Mat4
	buf     *fakeBuffer
}

type fakeBuffer struct {
	dev      *fakeDevice
	indices  int32
	releases int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{live: make(map[*fakeBuffer]struct{})}
}

func (d *fakeDevice) UploadMesh(vertices []float32, indices []uint32) graphics.MeshBuffer {
	d.uploads++
	b := &fakeBuffer{dev: d, indices: int32(len(indices))}
	d.live[b] = struct{}{}
	return b
}

func (d *fakeDevice) DrawMesh(program uint32, model mgl32.Mat4, buf graphics.MeshBuffer) {
	d.draws = append(d.draws, drawCall{program: program, model: model, buf: buf.(*fakeBuffer)})
}

func (b *fakeBuffer) IndexCount() int32 { return b.indices }

func (b *fakeBuffer) Release() {
	b.releases++
	delete(b.dev.live, b)
}
