//go:build raylib

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxlife/internal/app"
	"voxlife/internal/render"
	"voxlife/internal/rlview"
	"voxlife/internal/sched"
	"voxlife/internal/world"
)

func main() {
	log.SetPrefix("voxlife-raylib: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	acfg := cfg.Automaton()
	viewer := rlview.NewViewer(acfg.Full)
	w, err := world.New(acfg, viewer)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s := sched.New()
	w.Attach(s, cfg.StepInterval(), cfg.MeshInterval())
	cam := render.DefaultOrbit(w.Grid().Size())

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "voxlife "+acfg.Size().String())
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	bg := render.Background
	clock := 0.0
	paused := false
	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		clock += dt
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyN) {
			w.Tick()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if err := w.Reset(0); err != nil {
				log.Fatalf("%v", err)
			}
		}
		if !paused {
			s.Advance(time.Duration(dt * float64(time.Second)))
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, bg.A))
		rl.BeginMode3D(rlview.Camera(cam, clock))
		viewer.Draw()
		rl.EndMode3D()
		rl.DrawText(fmt.Sprint(w.Stats()), 10, 10, 16, rl.Black)
		rl.EndDrawing()
	}
}
