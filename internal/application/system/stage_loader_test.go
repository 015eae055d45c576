package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/frogbeat/internal/ecs"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

// createTestSimConfig mirrors the shipped sim.json
func createTestSimConfig() *config.SimConfig {
	return &config.SimConfig{
		Display: config.DisplayConfig{Title: "test", Scale: 1, TPS: 60},
		Grid:    config.GridConfig{Width: 20, Height: 16, CellSize: 50},
		Easing:  config.EasingConfig{Step: 10},
		Palette: config.PaletteConfig{
			Background: config.ColorConfig{A: 1},
			Player:     config.ColorConfig{R: 0, G: 0.1922, B: 0.3255, A: 1},
			Actor:      config.ColorConfig{R: 1, A: 1},
		},
	}
}

// createTestStageConfig creates the original layout: five actors on row 1
func createTestStageConfig() *config.StageConfig {
	stage := &config.StageConfig{
		ID:          "test",
		Name:        "test",
		PlayerSpawn: &config.PositionConfig{X: 10, Y: 15},
	}
	for i := 0; i < 5; i++ {
		stage.Actors = append(stage.Actors, config.ActorSpawnConfig{X: i, Y: 1})
	}
	return stage
}

func TestCoreConfig(t *testing.T) {
	cfg := CoreConfig(createTestSimConfig())

	assert.Equal(t, ecs.DefaultSimConfig(), cfg)
}

func TestToColor(t *testing.T) {
	c := ToColor(config.ColorConfig{R: 0.1, G: 0.2, B: 0.3, A: 0.4})

	assert.Equal(t, ecs.Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}, c)
}

func TestLoadStage(t *testing.T) {
	t.Run("spawns player and actors", func(t *testing.T) {
		w := ecs.NewWorld()

		id := LoadStage(w, createTestSimConfig(), createTestStageConfig())

		assert.Equal(t, w.PlayerID, id)
		tile, ok := w.Tile.Value(id)
		require.True(t, ok)
		assert.Equal(t, ecs.TileCoordinate{X: 10, Y: 15}, tile)
		pos, _ := w.Pixel.Value(id)
		assert.Equal(t, ecs.PixelCoordinate{X: 500, Y: 750}, pos)

		assert.Equal(t, 5, w.CountActors())
		assert.Equal(t, 6, w.Tile.Len())
	})

	t.Run("default spawn is bottom center", func(t *testing.T) {
		w := ecs.NewWorld()
		stage := createTestStageConfig()
		stage.PlayerSpawn = nil

		id := LoadStage(w, createTestSimConfig(), stage)

		tile, _ := w.Tile.Value(id)
		assert.Equal(t, ecs.TileCoordinate{X: 10, Y: 15}, tile)
	})

	t.Run("actor color override", func(t *testing.T) {
		w := ecs.NewWorld()
		stage := &config.StageConfig{
			Actors: []config.ActorSpawnConfig{
				{X: 0, Y: 0},
				{X: 1, Y: 0, Color: &config.ColorConfig{G: 1, A: 1}},
			},
		}

		LoadStage(w, createTestSimConfig(), stage)

		ids := w.Query(w.Role, w.Color)
		require.Len(t, ids, 3)
		c0, _ := w.Color.Value(ids[0])
		c1, _ := w.Color.Value(ids[1])
		assert.Equal(t, ecs.Color{R: 1, A: 1}, c0)
		assert.Equal(t, ecs.Color{G: 1, A: 1}, c1)
	})

	t.Run("decorations are drawn first and never move", func(t *testing.T) {
		w := ecs.NewWorld()
		stage := createTestStageConfig()
		stage.Decorations = []config.DecorationConfig{
			{X: 2, Y: 3, Color: config.ColorConfig{B: 1, A: 1}},
		}
		sim := createTestSimConfig()

		LoadStage(w, sim, stage)

		drawables := ecs.CollectDrawables(w, CoreConfig(sim))
		require.Len(t, drawables, 7)
		assert.Equal(t, 100.0, drawables[0].X)
		assert.Equal(t, 150.0, drawables[0].Y)
		assert.Equal(t, ecs.Color{B: 1, A: 1}, drawables[0].Color)
	})
}
