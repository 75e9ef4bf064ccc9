//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"voxlife/internal/app"
	"voxlife/internal/mesh"
	"voxlife/internal/render"
	"voxlife/internal/sched"
	"voxlife/internal/stream"
	"voxlife/internal/world"
)

func main() {
	log.SetPrefix("voxlife: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	acfg := cfg.Automaton()
	painter := render.NewPainter(acfg.Full)
	var sink mesh.Sink = painter
	if cfg.Serve != "" {
		hub := stream.NewHub()
		sink = mesh.NewMulti(painter, hub)
		go func() {
			log.Printf("streaming meshes on %s/ws", cfg.Serve)
			if err := http.ListenAndServe(cfg.Serve, hub.Handler()); err != nil {
				log.Printf("stream server stopped: %v", err)
			}
		}()
	}

	w, err := world.New(acfg, sink)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s := sched.New()
	w.Attach(s, cfg.StepInterval(), cfg.MeshInterval())

	game := app.New(w, s, painter, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("voxlife " + acfg.Size().String())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
