package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/frogbeat/internal/application/system"
	"github.com/younwookim/frogbeat/internal/infrastructure/audio"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
	"github.com/younwookim/frogbeat/internal/infrastructure/terminal"
)

func main() {
	configFlag := flag.String("config", "cmd/game/configs", "Config directory containing sim.json and stages/")
	stageFlag := flag.String("stage", "meadow", "Stage name under stages/")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = from clock)")
	muteFlag := flag.Bool("mute", false, "Disable the step cue")
	flag.Parse()

	loader := config.NewLoader(*configFlag)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	stageCfg, err := loader.LoadStage(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cue := audio.NewCue(40*time.Millisecond, -2)
	if !*muteFlag {
		if err := cue.Init(); err != nil {
			// Non-fatal, runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer cue.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	host := terminal.NewHost(screen, func(seed int64) *system.Simulation {
		return system.NewSimulation(cfg.Sim, stageCfg, seed)
	}, seed, terminal.Options{
		TPS:        cfg.Sim.Display.TPS,
		Background: system.ToColor(cfg.Sim.Palette.Background),
		OnStep:     cue.Step,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = host.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
