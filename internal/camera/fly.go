package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera-relative direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 10.0 // blocks per second
	DefaultSensitivity = 0.1  // degrees per pixel
	SprintMultiplier   = 3.0

	maxPitch = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Fly is a free-flying camera. Yaw and pitch are in degrees; yaw -90 looks down -Z.
type Fly struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	yaw, pitch float64

	Speed       float32
	Sensitivity float64
	Sprinting   bool
}

// NewFly places a camera at pos looking down -Z.
func NewFly(pos mgl32.Vec3) *Fly {
	f := &Fly{
		position:    pos,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
	f.updateVectors()
	return f
}

func (f *Fly) Position() mgl32.Vec3 { return f.position }
func (f *Fly) Front() mgl32.Vec3    { return f.front }
func (f *Fly) Yaw() float64         { return f.yaw }
func (f *Fly) Pitch() float64       { return f.pitch }

func (f *Fly) SetPosition(pos mgl32.Vec3) { f.position = pos }

func (f *Fly) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(f.position, f.position.Add(f.front), f.up)
}

// ProcessKeyboard moves the camera dt seconds in the given direction. Up and Down
// follow the world axis rather than the view.
func (f *Fly) ProcessKeyboard(dir Movement, dt float32) {
	velocity := f.Speed * dt
	if f.Sprinting {
		velocity *= SprintMultiplier
	}
	switch dir {
	case Forward:
		f.position = f.position.Add(f.front.Mul(velocity))
	case Backward:
		f.position = f.position.Sub(f.front.Mul(velocity))
	case Left:
		f.position = f.position.Sub(f.right.Mul(velocity))
	case Right:
		f.position = f.position.Add(f.right.Mul(velocity))
	case Up:
		f.position = f.position.Add(worldUp.Mul(velocity))
	case Down:
		f.position = f.position.Sub(worldUp.Mul(velocity))
	}
}

// ProcessMouse turns the camera by a cursor delta in pixels. Positive dy looks up.
func (f *Fly) ProcessMouse(dx, dy float64, constrainPitch bool) {
	f.yaw += dx * f.Sensitivity
	f.pitch += dy * f.Sensitivity

	if constrainPitch {
		f.pitch = min(max(f.pitch, -maxPitch), maxPitch)
	}
	f.updateVectors()
}

func (f *Fly) updateVectors() {
	y := mgl32.DegToRad(float32(f.yaw))
	p := mgl32.DegToRad(float32(f.pitch))
	f.front = mgl32.Vec3{
		float32(math.Cos(float64(y)) * math.Cos(float64(p))),
		float32(math.Sin(float64(p))),
		float32(math.Sin(float64(y)) * math.Cos(float64(p))),
	}.Normalize()
	f.right = f.front.Cross(worldUp).Normalize()
	f.up = f.right.Cross(f.front).Normalize()
}
