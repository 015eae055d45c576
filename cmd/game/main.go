package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/frogbeat/internal/application/game"
	"github.com/younwookim/frogbeat/internal/application/replay"
	"github.com/younwookim/frogbeat/internal/application/scene/playing"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window and print final tiles")
	stageFlag := flag.String("stage", "meadow", "Stage name under configs/stages")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = from clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var replayData *replay.ReplayData
	stageName := *stageFlag
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if replayData.Stage != "" {
			stageName = replayData.Stage
		}
	}

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *headlessFlag {
		if replayData == nil {
			log.Fatalf("-headless requires -replay")
		}
		res := runHeadless(cfg.Sim, stageCfg, replayData)
		printResult(os.Stdout, res)
		return
	}

	scene := playing.New(cfg.Sim, stageCfg, playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Replay:     replayData,
	})

	screenW, screenH := cfg.Sim.ScreenSize()
	g := game.New(scene, screenW, screenH)

	// Set up ebiten
	ebiten.SetWindowSize(screenW*cfg.Sim.Display.Scale, screenH*cfg.Sim.Display.Scale)
	ebiten.SetWindowTitle(cfg.Sim.Display.Title)
	ebiten.SetTPS(cfg.Sim.Display.TPS)

	// Run game; closing the window still saves the recording
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
