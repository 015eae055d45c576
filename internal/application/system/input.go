package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/frogbeat/internal/ecs"
)

// KeyBindings maps each movement key to the ebiten keys that trigger it
type KeyBindings struct {
	Up    []ebiten.Key
	Down  []ebiten.Key
	Left  []ebiten.Key
	Right []ebiten.Key
}

// DefaultKeyBindings returns W/S/A/D
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    []ebiten.Key{ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyS},
		Left:  []ebiten.Key{ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyD},
	}
}

// InputSystem reads key-release edges from ebiten
type InputSystem struct {
	keys         KeyBindings
	justReleased func(ebiten.Key) bool
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{
		keys:         keys,
		justReleased: inpututil.IsKeyJustReleased,
	}
}

// GetInput returns the released edges since the previous tick.
// Held keys do not count.
func (s *InputSystem) GetInput() ecs.InputState {
	return ecs.InputState{
		Up:    s.anyReleased(s.keys.Up),
		Down:  s.anyReleased(s.keys.Down),
		Left:  s.anyReleased(s.keys.Left),
		Right: s.anyReleased(s.keys.Right),
	}
}

func (s *InputSystem) anyReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.justReleased(k) {
			return true
		}
	}
	return false
}

// SetKeySource replaces the release-edge source (replays and tests)
func (s *InputSystem) SetKeySource(justReleased func(ebiten.Key) bool) {
	s.justReleased = justReleased
}
