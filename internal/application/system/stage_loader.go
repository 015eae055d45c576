package system

import (
	"github.com/younwookim/frogbeat/internal/ecs"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

// CoreConfig converts the loaded sim config into the core construction parameters
func CoreConfig(cfg *config.SimConfig) ecs.SimConfig {
	return ecs.SimConfig{
		GridWidth:  cfg.Grid.Width,
		GridHeight: cfg.Grid.Height,
		CellSize:   cfg.Grid.CellSize,
		EaseStep:   cfg.Easing.Step,
	}
}

// ToColor converts a config color into a core color
func ToColor(c config.ColorConfig) ecs.Color {
	return ecs.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// LoadStage spawns the stage's entities into the world and returns the player ID.
// Decorations are created first and the player last, so the player draws on top.
func LoadStage(w *ecs.World, sim *config.SimConfig, stage *config.StageConfig) ecs.EntityID {
	cellSize := sim.Grid.CellSize

	for _, d := range stage.Decorations {
		px := ecs.ProjectTile(ecs.TileCoordinate{X: d.X, Y: d.Y}, cellSize)
		w.CreateDecoration(px.X, px.Y, ToColor(d.Color))
	}

	actorColor := ToColor(sim.Palette.Actor)
	for _, a := range stage.Actors {
		c := actorColor
		if a.Color != nil {
			c = ToColor(*a.Color)
		}
		w.CreateActor(a.X, a.Y, c, cellSize)
	}

	spawnX, spawnY := sim.Grid.Width/2, sim.Grid.Height-1
	if stage.PlayerSpawn != nil {
		spawnX, spawnY = stage.PlayerSpawn.X, stage.PlayerSpawn.Y
	}
	return w.CreatePlayer(spawnX, spawnY, ToColor(sim.Palette.Player), cellSize)
}
