package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// near compares by absolute distance; float32 trig leaves ~1e-7 noise on zero components.
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func TestDefaultOrientation(t *testing.T) {
	f := NewFly(mgl32.Vec3{8, 100, 8})
	if !near(f.Front(), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("front = %v, want -Z", f.Front())
	}
	if f.Yaw() != DefaultYaw || f.Pitch() != DefaultPitch {
		t.Fatalf("yaw/pitch = %v/%v", f.Yaw(), f.Pitch())
	}
}

func TestProcessKeyboard(t *testing.T) {
	cases := []struct {
		dir  Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -10}},
		{Backward, mgl32.Vec3{0, 0, 10}},
		{Left, mgl32.Vec3{-10, 0, 0}},
		{Right, mgl32.Vec3{10, 0, 0}},
		{Up, mgl32.Vec3{0, 10, 0}},
		{Down, mgl32.Vec3{0, -10, 0}},
	}
	for _, tc := range cases {
		f := NewFly(mgl32.Vec3{})
		f.ProcessKeyboard(tc.dir, 1)
		if !near(f.Position(), tc.want) {
			t.Errorf("dir %d: position %v, want %v", tc.dir, f.Position(), tc.want)
		}
	}
}

func TestSprintScalesMovement(t *testing.T) {
	f := NewFly(mgl32.Vec3{})
	f.Sprinting = true
	f.ProcessKeyboard(Up, 0.5)
	if got := f.Position().Y(); mgl32.Abs(got-DefaultSpeed*SprintMultiplier*0.5) > eps {
		t.Fatalf("sprint y = %v", got)
	}
}

func TestPitchClamp(t *testing.T) {
	f := NewFly(mgl32.Vec3{})
	f.ProcessMouse(0, 5000, true)
	if f.Pitch() != 89 {
		t.Fatalf("pitch = %v, want 89", f.Pitch())
	}
	f.ProcessMouse(0, -10000, true)
	if f.Pitch() != -89 {
		t.Fatalf("pitch = %v, want -89", f.Pitch())
	}

	f.ProcessMouse(0, 10000, false)
	if f.Pitch() <= 89 {
		t.Fatalf("unconstrained pitch = %v, want > 89", f.Pitch())
	}
}

func TestMouseYaw(t *testing.T) {
	f := NewFly(mgl32.Vec3{})
	// 900 px * 0.1 = 90 degrees right: now facing +X
	f.ProcessMouse(900, 0, true)
	if !near(f.Front(), mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("front after yaw = %v, want +X", f.Front())
	}
	f.ProcessKeyboard(Forward, 1)
	if !near(f.Position(), mgl32.Vec3{10, 0, 0}) {
		t.Fatalf("position = %v", f.Position())
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	f := NewFly(mgl32.Vec3{3, 4, 5})
	f.ProcessMouse(123, -45, true)
	p := f.ViewMatrix().Mul4x1(f.Position().Vec4(1))
	if !near(p.Vec3(), mgl32.Vec3{}) {
		t.Fatalf("camera position in view space = %v", p)
	}

	// a point straight ahead lies on -Z in view space
	ahead := f.ViewMatrix().Mul4x1(f.Position().Add(f.Front().Mul(2)).Vec4(1))
	if !near(ahead.Vec3(), mgl32.Vec3{0, 0, -2}) {
		t.Fatalf("point ahead in view space = %v", ahead)
	}
}
