package ecs

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBlue = Color{R: 0, G: 0.1922, B: 0.3255, A: 1}
	testRed  = Color{R: 1, G: 0, B: 0, A: 1}
)

// fixedRand always returns the same index
type fixedRand struct{ n int }

func (f fixedRand) Intn(int) int { return f.n }

// createTestWorld builds the original layout: player at the bottom center, five actors on row 1
func createTestWorld(cfg SimConfig) *World {
	w := NewWorld()
	w.CreatePlayer(cfg.GridWidth/2, cfg.GridHeight-1, testBlue, cfg.CellSize)
	for i := 0; i < 5; i++ {
		w.CreateActor(i, 1, testRed, cfg.CellSize)
	}
	return w
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestColor_ImplementsColor(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0, B: 0.5, A: 1}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8000), b)
	assert.Equal(t, uint32(0xffff), a)

	// premultiplied by alpha
	r, _, _, a = Color{R: 1, A: 0.5}.RGBA()
	assert.Equal(t, a, r)

	// clamped
	r, _, _, _ = Color{R: 2, A: 1}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestInputState_Released(t *testing.T) {
	in := InputState{Up: true, Right: true}

	assert.True(t, in.Released(KeyUp))
	assert.False(t, in.Released(KeyDown))
	assert.False(t, in.Released(KeyLeft))
	assert.True(t, in.Released(KeyRight))
	assert.False(t, in.Released(Key(42)))
	assert.True(t, in.Any())
	assert.False(t, InputState{}.Any())
}

func TestTranslateInput(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  Direction
	}{
		{"up", InputState{Up: true}, DirUp},
		{"down", InputState{Down: true}, DirDown},
		{"left", InputState{Left: true}, DirLeft},
		{"right", InputState{Right: true}, DirRight},
		{"down overrides up", InputState{Up: true, Down: true}, DirDown},
		{"right overrides left", InputState{Left: true, Right: true}, DirRight},
		{"right wins over all", InputState{Up: true, Down: true, Left: true, Right: true}, DirRight},
		{"left overrides up and down", InputState{Up: true, Down: true, Left: true}, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			id := w.CreatePlayer(0, 0, testBlue, 50)

			dir, ok := TranslateInput(w, tt.input)

			assert.True(t, ok)
			assert.Equal(t, tt.want, dir)
			intent, _ := w.Intent.Value(id)
			assert.Equal(t, tt.want, intent.Direction)
		})
	}
}

func TestTranslateInput_NoReleaseLeavesIntentUnchanged(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(0, 0, testBlue, 50)
	w.Intent.Set(id, MovementIntent{Direction: DirLeft})

	dir, ok := TranslateInput(w, InputState{})

	assert.False(t, ok)
	assert.Equal(t, DirNone, dir)
	intent, _ := w.Intent.Value(id)
	assert.Equal(t, DirLeft, intent.Direction)
}

func TestTranslateInput_NoPlayer(t *testing.T) {
	w := NewWorld()
	actor := w.CreateActor(0, 0, testRed, 50)

	dir, ok := TranslateInput(w, InputState{Up: true})

	assert.False(t, ok)
	assert.Equal(t, DirNone, dir)
	intent, _ := w.Intent.Value(actor)
	assert.False(t, intent.Pending(), "Actors never receive player input")

	assert.NotPanics(t, func() { TranslateInput(w, nil) })
}

func TestTranslateInput_PlayerWithoutIntent(t *testing.T) {
	w := NewWorld()
	w.Create(WithTile(0, 0), WithRole(RolePlayer))

	_, ok := TranslateInput(w, InputState{Up: true})
	assert.False(t, ok)
}

func TestResolveIntents_Player(t *testing.T) {
	tests := []struct {
		dir  Direction
		want TileCoordinate
	}{
		{DirUp, TileCoordinate{X: 5, Y: 4}},
		{DirDown, TileCoordinate{X: 5, Y: 6}},
		{DirLeft, TileCoordinate{X: 4, Y: 5}},
		{DirRight, TileCoordinate{X: 6, Y: 5}},
		{DirNone, TileCoordinate{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			w := NewWorld()
			id := w.CreatePlayer(5, 5, testBlue, 50)
			w.Intent.Set(id, MovementIntent{Direction: tt.dir})

			ResolveIntents(w, fixedRand{})

			tile, _ := w.Tile.Value(id)
			assert.Equal(t, tt.want, tile)
			intent, _ := w.Intent.Value(id)
			assert.Equal(t, DirNone, intent.Direction, "Player intent is cleared after every pass")
		})
	}
}

func TestResolveIntents_AutonomousUsesRand(t *testing.T) {
	for i, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			w := NewWorld()
			id := w.CreateActor(3, 3, testRed, 50)

			moved := ResolveIntents(w, fixedRand{n: i})

			assert.Equal(t, 1, moved)
			dx, dy := dir.Delta()
			tile, _ := w.Tile.Value(id)
			assert.Equal(t, TileCoordinate{X: 3 + dx, Y: 3 + dy}, tile)
			intent, _ := w.Intent.Value(id)
			assert.Equal(t, dir, intent.Direction, "Actor keeps its last drawn direction")
		})
	}
}

func TestResolveIntents_SkipsEntitiesWithoutTile(t *testing.T) {
	w := NewWorld()
	id := w.Create(WithPixel(0, 0), WithIntent(), WithRole(RoleAutonomous))

	moved := ResolveIntents(w, fixedRand{})

	assert.Equal(t, 0, moved)
	assert.False(t, w.Tile.Has(id))
}

func TestResolveIntents_NoClamping(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(0, 0, testBlue, 50)

	w.Intent.Set(id, MovementIntent{Direction: DirUp})
	ResolveIntents(w, fixedRand{})
	w.Intent.Set(id, MovementIntent{Direction: DirLeft})
	ResolveIntents(w, fixedRand{})

	tile, _ := w.Tile.Value(id)
	assert.Equal(t, TileCoordinate{X: -1, Y: -1}, tile, "Coordinates may leave the grid")
}

func TestEasePositions(t *testing.T) {
	cfg := DefaultSimConfig()

	t.Run("moves each axis one step toward target", func(t *testing.T) {
		w := NewWorld()
		id := w.Create(WithTile(2, 1), WithPixel(0, 100))

		EasePositions(w, cfg)

		pos, _ := w.Pixel.Value(id)
		assert.Equal(t, PixelCoordinate{X: 10, Y: 90}, pos)
	})

	t.Run("at target stays put", func(t *testing.T) {
		w := NewWorld()
		id := w.Create(WithTile(2, 1), WithPixel(100, 50))

		EasePositions(w, cfg)

		pos, _ := w.Pixel.Value(id)
		assert.Equal(t, PixelCoordinate{X: 100, Y: 50}, pos)
	})

	t.Run("ignores entities without tile", func(t *testing.T) {
		w := NewWorld()
		id := w.CreateDecoration(13, 17, testRed)

		EasePositions(w, cfg)

		pos, _ := w.Pixel.Value(id)
		assert.Equal(t, PixelCoordinate{X: 13, Y: 17}, pos)
	})

	t.Run("does not touch tile", func(t *testing.T) {
		w := NewWorld()
		id := w.Create(WithTile(2, 1), WithPixel(0, 0))

		EasePositions(w, cfg)

		tile, _ := w.Tile.Value(id)
		assert.Equal(t, TileCoordinate{X: 2, Y: 1}, tile)
	})
}

func TestCollectDrawables(t *testing.T) {
	cfg := DefaultSimConfig()
	w := NewWorld()
	player := w.CreatePlayer(1, 2, testBlue, cfg.CellSize)
	deco := w.CreateDecoration(7, 9, testRed)
	w.Create(WithPixel(1, 1))
	w.Create(WithColor(testRed), WithTile(0, 0))

	out := CollectDrawables(w, cfg)

	require.Len(t, out, 2)
	assert.Equal(t, Drawable{X: 50, Y: 100, Width: 50, Height: 50, Color: testBlue}, out[0])
	assert.Equal(t, Drawable{X: 7, Y: 9, Width: 50, Height: 50, Color: testRed}, out[1])

	// Pure: nothing changed
	pos, _ := w.Pixel.Value(player)
	assert.Equal(t, PixelCoordinate{X: 50, Y: 100}, pos)
	pos, _ = w.Pixel.Value(deco)
	assert.Equal(t, PixelCoordinate{X: 7, Y: 9}, pos)
}

func TestCollectDrawables_EmptyWorld(t *testing.T) {
	out := CollectDrawables(NewWorld(), DefaultSimConfig())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTick_ResolvesBeforeEasing(t *testing.T) {
	cfg := DefaultSimConfig()
	w := NewWorld()
	id := w.CreatePlayer(10, 15, testBlue, cfg.CellSize)
	w.Intent.Set(id, MovementIntent{Direction: DirUp})

	Tick(w, cfg, fixedRand{})

	tile, _ := w.Tile.Value(id)
	pos, _ := w.Pixel.Value(id)
	assert.Equal(t, TileCoordinate{X: 10, Y: 14}, tile)
	assert.Equal(t, 740.0, pos.Y, "Easer sees the tile written by the resolver in the same tick")
}

func TestScreenSize(t *testing.T) {
	w, h := DefaultSimConfig().ScreenSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 800, h)
}

// Properties

func TestProperty_IntentConsumption(t *testing.T) {
	cfg := DefaultSimConfig()
	rng := rand.New(rand.NewSource(1))
	w := createTestWorld(cfg)

	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			TranslateInput(w, InputState{Left: i%2 == 0, Down: i%2 == 1})
		}
		ResolveIntents(w, rng)

		intent, _ := w.Intent.Value(w.PlayerID)
		require.Equal(t, DirNone, intent.Direction, "tick %d", i)
	}
}

func TestProperty_UnitStep(t *testing.T) {
	cfg := DefaultSimConfig()
	rng := rand.New(rand.NewSource(7))
	w := createTestWorld(cfg)
	inputs := []InputState{{}, {Up: true}, {Down: true}, {Left: true}, {Right: true}, {Up: true, Left: true}}

	for i := 0; i < 500; i++ {
		before := make(map[EntityID]TileCoordinate)
		for _, id := range w.Tile.Entities() {
			before[id], _ = w.Tile.Value(id)
		}

		TranslateInput(w, inputs[i%len(inputs)])
		Tick(w, cfg, rng)

		for id, prev := range before {
			cur, _ := w.Tile.Value(id)
			dx := abs(cur.X - prev.X)
			dy := abs(cur.Y - prev.Y)
			require.LessOrEqual(t, max(dx, dy), 1, "Chebyshev distance must be 0 or 1")
			require.False(t, dx != 0 && dy != 0, "Movement must be axis-aligned")
		}
	}
}

func TestProperty_EasingExactConvergence(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		target int // tile
		ticks  int
	}{
		{"one cell down", 700, 15, 5},
		{"one cell up", 750, 14, 5},
		{"three cells", 0, 3, 15},
	}

	cfg := DefaultSimConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			id := w.Create(WithTile(0, tt.target), WithPixel(0, tt.start))
			target := float64(tt.target) * cfg.CellSize

			for i := 0; i < tt.ticks-1; i++ {
				EasePositions(w, cfg)
				pos, _ := w.Pixel.Value(id)
				require.NotEqual(t, target, pos.Y, "reached target early at tick %d", i+1)
			}

			EasePositions(w, cfg)
			pos, _ := w.Pixel.Value(id)
			assert.Equal(t, target, pos.Y)

			for i := 0; i < 50; i++ {
				EasePositions(w, cfg)
			}
			pos, _ = w.Pixel.Value(id)
			assert.Equal(t, target, pos.Y, "stays fixed after convergence")
		})
	}
}

func TestProperty_EasingBoundedOscillation(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.EaseStep = 15 // does not divide 50

	w := NewWorld()
	id := w.Create(WithTile(1, 1), WithPixel(0, 0))

	for i := 0; i < 20; i++ {
		EasePositions(w, cfg)
	}
	for i := 0; i < 1000; i++ {
		EasePositions(w, cfg)
		pos, _ := w.Pixel.Value(id)
		require.LessOrEqual(t, math.Abs(pos.X-50), cfg.EaseStep)
		require.LessOrEqual(t, math.Abs(pos.Y-50), cfg.EaseStep)
	}
}

func TestProperty_RenderCompleteness(t *testing.T) {
	cfg := DefaultSimConfig()
	w := createTestWorld(cfg)
	w.CreateDecoration(3, 4, testRed)
	w.Create(WithPixel(1, 1))
	w.Create(WithColor(testBlue))
	w.Create(WithTile(9, 9), WithColor(testBlue))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		Tick(w, cfg, rng)
	}

	out := CollectDrawables(w, cfg)
	expected := w.Query(w.Pixel, w.Color)
	require.Len(t, out, len(expected))
	assert.Len(t, out, 7, "player, five actors and one decoration")

	for i, id := range expected {
		pos, _ := w.Pixel.Value(id)
		c, _ := w.Color.Value(id)
		assert.Equal(t, pos.X, out[i].X)
		assert.Equal(t, pos.Y, out[i].Y)
		assert.Equal(t, c, out[i].Color)
		assert.Equal(t, cfg.CellSize, out[i].Width)
		assert.Equal(t, cfg.CellSize, out[i].Height)
	}
}

func TestProperty_AutonomousLiveness(t *testing.T) {
	const samples = 10000
	rng := rand.New(rand.NewSource(42))
	w := NewWorld()
	id := w.CreateActor(0, 0, testRed, 50)

	counts := make(map[Direction]int)
	for i := 0; i < samples; i++ {
		prev, _ := w.Tile.Value(id)
		ResolveIntents(w, rng)
		cur, _ := w.Tile.Value(id)
		require.NotEqual(t, prev, cur, "actor must move every tick")

		intent, _ := w.Intent.Value(id)
		counts[intent.Direction]++
	}

	require.Len(t, counts, 4)
	expected := float64(samples) / 4
	chi2 := 0.0
	for _, dir := range Directions {
		d := float64(counts[dir]) - expected
		chi2 += d * d / expected
	}
	// df=3, p=0.001
	assert.Less(t, chi2, 16.27, "direction counts %v", counts)
}

func TestProperty_ConcreteScenario(t *testing.T) {
	cfg := DefaultSimConfig()
	w := NewWorld()
	id := w.CreatePlayer(10, 15, testBlue, cfg.CellSize)
	rng := rand.New(rand.NewSource(1))

	TranslateInput(w, InputState{Up: true})
	ResolveIntents(w, rng)

	tile, _ := w.Tile.Value(id)
	assert.Equal(t, TileCoordinate{X: 10, Y: 14}, tile)

	for i := 0; i < 5; i++ {
		EasePositions(w, cfg)
	}
	pos, _ := w.Pixel.Value(id)
	assert.Equal(t, 700.0, pos.Y)
	assert.Equal(t, 500.0, pos.X)

	for i := 0; i < 20; i++ {
		Tick(w, cfg, rng)
	}
	pos, _ = w.Pixel.Value(id)
	assert.Equal(t, 700.0, pos.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
