package main

import (
	"fmt"
	"io"

	"github.com/younwookim/frogbeat/internal/application/replay"
	"github.com/younwookim/frogbeat/internal/application/system"
	"github.com/younwookim/frogbeat/internal/ecs"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

// HeadlessResult is the final state after a windowless replay
type HeadlessResult struct {
	Seed   int64
	Frames int
	Ticks  int
	Tiles  []EntityTile
}

// EntityTile is one entity's final tile and role
type EntityTile struct {
	ID   ecs.EntityID
	Role ecs.Role
	Tile ecs.TileCoordinate
}

// runHeadless feeds the recorded frames through a fresh simulation
func runHeadless(sim *config.SimConfig, stage *config.StageConfig, data *replay.ReplayData) HeadlessResult {
	s := system.NewSimulation(sim, stage, data.Seed)
	replayer := replay.NewReplayer(*data)

	for {
		input, paused, ok := replayer.GetInput()
		if !ok {
			break
		}
		if paused {
			continue
		}
		s.Interact(input)
		s.Update()
	}

	w := s.World()
	res := HeadlessResult{
		Seed:   data.Seed,
		Frames: replayer.CurrentFrame(),
		Ticks:  s.Ticks(),
	}
	for _, id := range w.Query(w.Tile, w.Role) {
		tile, _ := w.Tile.Value(id)
		res.Tiles = append(res.Tiles, EntityTile{ID: id, Role: w.RoleOf(id), Tile: tile})
	}
	return res
}

func printResult(out io.Writer, res HeadlessResult) {
	_, _ = fmt.Fprintf(out, "seed %d: %d frames, %d ticks\n", res.Seed, res.Frames, res.Ticks)
	for _, e := range res.Tiles {
		_, _ = fmt.Fprintf(out, "%4d %-10s (%d, %d)\n", e.ID, e.Role, e.Tile.X, e.Tile.Y)
	}
}
