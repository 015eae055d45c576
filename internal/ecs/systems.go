package ecs

// SimConfig holds the fixed construction parameters of the simulation
type SimConfig struct {
	GridWidth  int     // cells
	GridHeight int     // cells
	CellSize   float64 // pixels per cell
	EaseStep   float64 // pixels per tick, smaller than CellSize
}

// DefaultSimConfig returns the original 20x16 grid with 50px cells
func DefaultSimConfig() SimConfig {
	return SimConfig{
		GridWidth:  20,
		GridHeight: 16,
		CellSize:   50,
		EaseStep:   10,
	}
}

// ScreenSize returns the grid extent in pixels
func (c SimConfig) ScreenSize() (int, int) {
	return int(float64(c.GridWidth) * c.CellSize), int(float64(c.GridHeight) * c.CellSize)
}

// Key is one of the four designated movement keys
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// KeyReleaser is the input snapshot a host supplies each poll
type KeyReleaser interface {
	Released(k Key) bool
}

// InputState holds the released edges of one input poll
type InputState struct {
	Up, Down, Left, Right bool
}

// Released reports whether key k was released since the last poll
func (s InputState) Released(k Key) bool {
	switch k {
	case KeyUp:
		return s.Up
	case KeyDown:
		return s.Down
	case KeyLeft:
		return s.Left
	case KeyRight:
		return s.Right
	default:
		return false
	}
}

// Any reports whether any key was released
func (s InputState) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Rand is the random source drawn by the intent resolver.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// keyOrder is the fixed check order; later checks overwrite earlier ones
var keyOrder = [4]struct {
	key Key
	dir Direction
}{
	{KeyUp, DirUp},
	{KeyDown, DirDown},
	{KeyLeft, DirLeft},
	{KeyRight, DirRight},
}

// TranslateInput writes the released direction into the player's intent.
// Returns the direction written and whether anything was written.
func TranslateInput(w *World, input KeyReleaser) (Direction, bool) {
	id := w.PlayerID
	if id == 0 || input == nil {
		return DirNone, false
	}

	intent, ok := w.Intent.Get(id)
	if !ok {
		return DirNone, false
	}

	dir := DirNone
	for _, k := range keyOrder {
		if input.Released(k.key) {
			dir = k.dir
		}
	}
	if dir == DirNone {
		return DirNone, false
	}

	intent.Direction = dir
	return dir, true
}

// RandomDirection draws one of the four directions uniformly
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// ResolveIntents shifts every entity with a pending intent by one tile.
// Player intents are cleared; autonomous entities draw a fresh direction
// every tick and keep it in the intent as the last drawn value.
// Returns the number of entities moved.
func ResolveIntents(w *World, rng Rand) int {
	moved := 0
	for _, id := range w.Query(w.Tile, w.Intent) {
		intent, _ := w.Intent.Get(id)

		dir := intent.Direction
		autonomous := w.RoleOf(id) == RoleAutonomous
		if autonomous {
			dir = RandomDirection(rng)
		}

		if dir != DirNone {
			tile, _ := w.Tile.Get(id)
			dx, dy := dir.Delta()
			tile.X += dx
			tile.Y += dy
			moved++
		}

		if autonomous {
			intent.Direction = dir
		} else {
			intent.Direction = DirNone
		}
	}
	return moved
}

// approach moves v one step toward target without any snapping
func approach(v, target, step float64) float64 {
	if v < target {
		return v + step
	}
	if v > target {
		return v - step
	}
	return v
}

// EasePositions moves each pixel coordinate one EaseStep toward its tile projection,
// each axis independently
func EasePositions(w *World, cfg SimConfig) {
	for _, id := range w.Query(w.Tile, w.Pixel) {
		tile, _ := w.Tile.Value(id)
		pos, _ := w.Pixel.Get(id)

		target := ProjectTile(tile, cfg.CellSize)
		pos.X = approach(pos.X, target.X, cfg.EaseStep)
		pos.Y = approach(pos.Y, target.Y, cfg.EaseStep)
	}
}

// CollectDrawables emits one CellSize square per entity with pixel coordinate and color.
// It never mutates the world.
func CollectDrawables(w *World, cfg SimConfig) []Drawable {
	ids := w.Query(w.Pixel, w.Color)
	out := make([]Drawable, 0, len(ids))
	for _, id := range ids {
		pos, _ := w.Pixel.Value(id)
		c, _ := w.Color.Value(id)
		out = append(out, Drawable{
			X:      pos.X,
			Y:      pos.Y,
			Width:  cfg.CellSize,
			Height: cfg.CellSize,
			Color:  c,
		})
	}
	return out
}

// Tick runs one fixed simulation step: resolve intents, then ease positions
func Tick(w *World, cfg SimConfig, rng Rand) {
	ResolveIntents(w, rng)
	EasePositions(w, cfg)
}
