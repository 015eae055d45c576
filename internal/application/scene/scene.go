// Package scene defines the Scene interface for screens driven by the host loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the windowed host.
//
// The host loop calls Update once per fixed tick and Draw once per frame.
// A scene requests a transition by returning a non-nil Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed tick.
	// Returning ebiten.Termination ends the run without an error.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the host shuts down.
	OnExit()
}
