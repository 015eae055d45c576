// Package terminal runs the simulation in a character-cell terminal via tcell.
//
// One grid cell is drawn as CharsPerCell characters across and one row down,
// which keeps squares roughly square in common terminal fonts. Terminals do not
// report key releases, so every key event counts as a release edge.
package terminal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/frogbeat/internal/application/system"
	"github.com/younwookim/frogbeat/internal/ecs"
)

// CharsPerCell is the number of terminal columns per grid cell
const CharsPerCell = 2

// Options configure the terminal host
type Options struct {
	TPS        int
	Background ecs.Color
	// OnStep is attached to every simulation the host creates
	OnStep func(from, to ecs.TileCoordinate)
	// NewSeed picks the seed for a restart
	NewSeed func() int64
}

// Host owns the screen and drives one simulation at a fixed tick rate
type Host struct {
	screen tcell.Screen
	newSim func(seed int64) *system.Simulation
	sim    *system.Simulation
	opts   Options

	pending ecs.InputState
	paused  bool
}

// NewHost creates a host on an initialized screen. newSim builds a
// simulation for a seed; it is called again on restart.
func NewHost(screen tcell.Screen, newSim func(seed int64) *system.Simulation, seed int64, opts Options) *Host {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return time.Now().UnixNano() }
	}

	h := &Host{
		screen: screen,
		newSim: newSim,
		opts:   opts,
	}
	h.reset(seed)
	return h
}

func (h *Host) reset(seed int64) {
	h.sim = h.newSim(seed)
	h.sim.OnPlayerStep = h.opts.OnStep
	h.pending = ecs.InputState{}
	h.paused = false
}

// HandleEvent applies one terminal event. It returns false when the host should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			h.pending.Up = true
		case tcell.KeyDown:
			h.pending.Down = true
		case tcell.KeyLeft:
			h.pending.Left = true
		case tcell.KeyRight:
			h.pending.Right = true
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}

	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'w', 'W':
		h.pending.Up = true
	case 's', 'S':
		h.pending.Down = true
	case 'a', 'A':
		h.pending.Left = true
	case 'd', 'D':
		h.pending.Right = true
	case ' ':
		h.paused = !h.paused
	case 'r', 'R':
		h.reset(h.opts.NewSeed())
	case 'q', 'Q':
		return false
	}
	return true
}

// Step runs one tick with the keys gathered since the previous tick, then draws
func (h *Host) Step() {
	if !h.paused {
		h.sim.Interact(h.pending)
		h.sim.Update()
	}
	h.pending = ecs.InputState{}
	h.Draw()
}

// Draw rasterizes the drawables into character cells
func (h *Host) Draw() {
	cfg := h.sim.Config()
	sw, sh := h.screen.Size()
	gridW := cfg.GridWidth * CharsPerCell
	gridH := cfg.GridHeight

	h.screen.Clear()

	bg := tcell.StyleDefault.Background(ColorOf(h.opts.Background))
	for y := 0; y < gridH && y < sh; y++ {
		for x := 0; x < gridW && x < sw; x++ {
			h.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, d := range h.sim.Draw() {
		col, row := CellOf(d, cfg.CellSize)
		style := tcell.StyleDefault.Background(ColorOf(d.Color))
		for dx := 0; dx < CharsPerCell; dx++ {
			x := col + dx
			if x < 0 || x >= sw || row < 0 || row >= sh {
				continue
			}
			h.screen.SetContent(x, row, ' ', nil, style)
		}
	}

	if gridH < sh {
		h.drawStatus(gridH)
	}

	h.screen.Show()
}

func (h *Host) drawStatus(row int) {
	status := fmt.Sprintf("seed %d  tick %d", h.sim.Seed(), h.sim.Ticks())
	if h.paused {
		status += "  PAUSED"
	}
	status += "  | wasd/arrows move  space pause  r restart  esc quit"

	sw, _ := h.screen.Size()
	for i, r := range []rune(status) {
		if i >= sw {
			break
		}
		h.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
}

// Run polls events and ticks until quit or ctx is done. The caller owns Init and Fini.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(h.opts.TPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.Step()
		}
	}
}

// Simulation returns the current simulation
func (h *Host) Simulation() *system.Simulation {
	return h.sim
}

// Paused reports whether ticks are suspended
func (h *Host) Paused() bool {
	return h.paused
}

// ColorOf converts a core color to a 24-bit terminal color
func ColorOf(c ecs.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// CellOf maps a drawable's top-left pixel to its terminal column and row
func CellOf(d ecs.Drawable, cellSize float64) (col, row int) {
	col = int(math.Round(d.X / cellSize * CharsPerCell))
	row = int(math.Round(d.Y / cellSize))
	return col, row
}
