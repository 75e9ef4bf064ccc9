package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"voxlife/internal/app"
	"voxlife/internal/mesh"
	"voxlife/internal/sched"
	"voxlife/internal/stream"
	"voxlife/internal/world"
)

func main() {
	log.SetPrefix("voxlife-headless: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 50, "generations to run when not serving")
	every := flag.Int("every", 1, "print stats every N generations")
	flag.Parse()

	acfg := cfg.Automaton()
	if cfg.Serve == "" {
		runBatch(cfg, *steps, *every)
		return
	}

	hub := stream.NewHub()
	w, err := world.New(acfg, hub)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s := sched.New()
	w.Attach(s, cfg.StepInterval(), cfg.MeshInterval())
	s.OnFixedInterval(5*time.Second, func() { log.Printf("%s, %d viewers", w.Stats(), hub.Clients()) })

	srv := &http.Server{Addr: cfg.Serve, Handler: hub.Handler()}
	go func() {
		log.Printf("streaming %s grid on %s/ws", acfg.Size(), cfg.Serve)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := s.Run(ctx, 10*time.Millisecond); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("scheduler: %v", err)
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func runBatch(cfg *app.Config, steps, every int) {
	rec := mesh.NewRecorder()
	w, err := world.New(cfg.Automaton(), rec)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if every <= 0 {
		every = 1
	}
	fmt.Println(w.Stats())
	for i := 1; i <= steps; i++ {
		w.Tick()
		st := w.Stats()
		if i%every == 0 || i == steps {
			fmt.Println(st)
		}
		if st.Full == 0 && st.Decaying == 0 {
			fmt.Printf("extinct after %d generations\n", st.Tick)
			break
		}
	}
	for _, m := range rec.Installed() {
		if err := m.Validate(); err != nil {
			log.Fatalf("final mesh: %v", err)
		}
	}
}
