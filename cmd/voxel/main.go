package main

import (
	"flag"
	"log"
	"runtime"
	"sync/atomic"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

// read by the shutdown hook, which may run on the signal goroutine
var residentChunks atomic.Int64

func main() {
	defer closer.Close()

	width := flag.Int("width", game.DefaultWidth, "window width in pixels")
	height := flag.Int("height", game.DefaultHeight, "window height in pixels")
	seed := flag.Int64("seed", config.GetSeed(), "world seed")
	renderDistance := flag.Int("render-distance", config.GetRenderDistance(), "chunks streamed around the camera (1-32)")
	initialRadius := flag.Int("initial-radius", config.GetInitialRadius(), "chunks built around the origin at startup (0-8)")
	fps := flag.Int("fps", config.GetFPSLimit(), "frame cap, 0 for unlimited")
	generator := flag.String("generator", config.GetGenerator(), "terrain generator: sine, simplex or value")
	async := flag.Bool("async", config.GetAsync(), "generate chunks on background workers")
	workers := flag.Int("workers", config.GetWorkers(), "background workers, 0 for one per CPU")
	verbose := flag.Bool("verbose", false, "log chunk streaming")
	flag.Parse()

	config.SetSeed(*seed)
	config.SetRenderDistance(*renderDistance)
	config.SetInitialRadius(*initialRadius)
	config.SetFPSLimit(*fps)
	config.SetGenerator(*generator)
	config.SetAsync(*async)
	config.SetWorkers(*workers)
	config.SetVerbose(*verbose)

	log.SetPrefix("[voxel] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	closer.Bind(func() {
		log.Printf("shutdown: %d chunks resident", residentChunks.Load())
		if top := profiling.TopN(5); top != "" {
			log.Printf("last frame: %s", top)
		}
	})

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(*width, *height, game.WindowTitle)
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}
	defer window.Destroy()

	components, err := setupGame(window)
	if err != nil {
		log.Fatalf("game setup: %v", err)
	}
	defer components.Dispose()

	log.Printf("world seed %d, generator %s, render distance %d, async %v",
		config.GetSeed(), config.GetGenerator(), config.GetRenderDistance(), config.GetAsync())

	NewGameLoop(window, components).Run()
}
