package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

func TestOverlayLines(t *testing.T) {
	lines := OverlayLines(OverlayStats{
		FPS:          60,
		FrameTime:    16500 * time.Microsecond,
		Position:     mgl32.Vec3{8, 100.5, -3.25},
		ChunkX:       0,
		ChunkZ:       -1,
		Chunks:       81,
		Pending:      3,
		Queued:       2,
		Faces:        12345,
		Seed:         42,
		TopProfiling: "world.Update:2.5ms, renderer.Render:0ms",
	})

	want := []string{
		"FPS: 60 (16.5ms)",
		"Pos: 8.00, 100.50, -3.25",
		"Chunk: 0, -1",
		"Chunks: 81 loaded, 3 pending, 2 queued",
		"Faces: 12345",
		"Seed: 42",
		"world.Update:2.5ms",
	}
	if !slices.Equal(lines, want) {
		t.Fatalf("lines =\n%q\nwant\n%q", lines, want)
	}
}

func TestOverlayLinesTargetAndWireframe(t *testing.T) {
	lines := OverlayLines(OverlayStats{Wireframe: true, Target: "grass at 3, 9, 3"})
	n := len(lines)
	if lines[n-2] != "Target: grass at 3, 9, 3" || lines[n-1] != "Wireframe" {
		t.Fatalf("tail = %q", lines[n-2:])
	}
}

func TestOverlayToggle(t *testing.T) {
	o := NewOverlay(nil)
	if o.Visible() {
		t.Fatal("overlay starts visible")
	}
	if !o.Toggle() || !o.Visible() {
		t.Fatal("toggle did not show the overlay")
	}
	if o.Toggle() {
		t.Fatal("second toggle did not hide the overlay")
	}
}

func TestFPSLimiterUnlimitedDoesNotBlock(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.WaitFor(0)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Fatal("unlimited limiter slept")
	}
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.WaitFor(100)
	}
	// 5 frames at 100 fps: at least ~50ms
	if el := time.Since(start); el < 45*time.Millisecond {
		t.Fatalf("5 frames at 100fps took %v", el)
	}
}
