package system

import (
	"math/rand"

	"github.com/younwookim/frogbeat/internal/ecs"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

// Simulation is the boundary between a host loop and the core.
// The host calls Interact at its input poll, Update once per fixed tick,
// and Draw at its draw point.
type Simulation struct {
	world *ecs.World
	cfg   ecs.SimConfig
	stage string

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	ticks int

	// OnPlayerStep is called after a tick in which the player's tile changed
	OnPlayerStep func(from, to ecs.TileCoordinate)
}

// NewSimulation builds the world from the stage config with a seeded RNG
func NewSimulation(sim *config.SimConfig, stage *config.StageConfig, seed int64) *Simulation {
	w := ecs.NewWorld()
	LoadStage(w, sim, stage)

	return &Simulation{
		world: w,
		cfg:   CoreConfig(sim),
		stage: stage.Name,
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
	}
}

// Interact translates one input snapshot into the player's intent
func (s *Simulation) Interact(input ecs.KeyReleaser) {
	ecs.TranslateInput(s.world, input)
}

// Update runs one fixed tick
func (s *Simulation) Update() {
	before, hadPlayer := s.PlayerTile()

	ecs.Tick(s.world, s.cfg, s.rng)
	s.ticks++

	if !hadPlayer || s.OnPlayerStep == nil {
		return
	}
	if after, _ := s.PlayerTile(); after != before {
		s.OnPlayerStep(before, after)
	}
}

// Draw returns the drawable squares for the current state
func (s *Simulation) Draw() []ecs.Drawable {
	return ecs.CollectDrawables(s.world, s.cfg)
}

// PlayerTile returns the player's tile coordinate
func (s *Simulation) PlayerTile() (ecs.TileCoordinate, bool) {
	if s.world.PlayerID == 0 {
		return ecs.TileCoordinate{}, false
	}
	return s.world.Tile.Value(s.world.PlayerID)
}

// World returns the underlying world (for hosts and tests)
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Config returns the core construction parameters
func (s *Simulation) Config() ecs.SimConfig {
	return s.cfg
}

// Seed returns the RNG seed
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Stage returns the stage name
func (s *Simulation) Stage() string {
	return s.stage
}

// Ticks returns the number of updates run so far
func (s *Simulation) Ticks() int {
	return s.ticks
}
