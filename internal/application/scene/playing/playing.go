// Package playing provides the simulation scene for the windowed host.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/frogbeat/internal/application/replay"
	"github.com/younwookim/frogbeat/internal/application/scene"
	"github.com/younwookim/frogbeat/internal/application/state"
	"github.com/younwookim/frogbeat/internal/application/system"
	"github.com/younwookim/frogbeat/internal/ecs"
	"github.com/younwookim/frogbeat/internal/infrastructure/config"
)

var colorOverlay = color.RGBA{0, 0, 0, 128}

// Options control how the scene is seeded and whether it records or replays
type Options struct {
	// Seed for the actor RNG; zero picks one from the clock
	Seed int64
	// RecordPath enables recording when non-empty
	RecordPath string
	// Replay plays back recorded input instead of reading the keyboard
	Replay *replay.ReplayData
}

// Playing runs the simulation inside the ebiten loop
type Playing struct {
	cfg      *config.SimConfig
	stageCfg *config.StageConfig
	sim      *system.Simulation
	input    *system.InputSystem
	state    state.RunState

	background ecs.Color
	screenW    int
	screenH    int

	justPressed func(ebiten.Key) bool

	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Input playback
	replayer *replay.Replayer
}

// New creates a new Playing scene on the given stage
func New(cfg *config.SimConfig, stageCfg *config.StageConfig, opts Options) *Playing {
	seed := opts.Seed
	if opts.Replay != nil {
		seed = opts.Replay.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screenW, screenH := cfg.ScreenSize()
	p := &Playing{
		cfg:            cfg,
		stageCfg:       stageCfg,
		sim:            system.NewSimulation(cfg, stageCfg, seed),
		input:          system.NewInputSystem(system.DefaultKeyBindings()),
		state:          state.StateRunning,
		background:     system.ToColor(cfg.Palette.Background),
		screenW:        screenW,
		screenH:        screenH,
		justPressed:    inpututil.IsKeyJustPressed,
		seed:           seed,
		recordFilename: opts.RecordPath,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replaying %d frames (seed: %d)", p.replayer.TotalFrames(), seed)
	} else if opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, stageCfg.ID)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, seed)
	}

	return p
}

// Update advances one fixed tick (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.replayer != nil {
		p.updateReplay()
		return nil, nil
	}

	if p.justPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause()
	}
	if p.justPressed(ebiten.KeyR) {
		p.restart()
	}
	if p.justPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	if !p.state.Ticking() {
		if p.recorder != nil {
			p.recorder.RecordFrame(ecs.InputState{}, true)
		}
		return nil, nil
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input, false)
	}

	p.sim.Interact(input)
	p.sim.Update()

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updateReplay() {
	if p.state == state.StateReplayDone {
		return
	}

	input, paused, ok := p.replayer.GetInput()
	if !ok {
		p.state = state.StateReplayDone
		tile, _ := p.sim.PlayerTile()
		log.Printf("Replay finished after %d ticks, player at (%d, %d)", p.sim.Ticks(), tile.X, tile.Y)
		return
	}
	if paused {
		return
	}

	p.sim.Interact(input)
	p.sim.Update()
}

func (p *Playing) restart() {
	p.seed = time.Now().UnixNano()
	p.sim = system.NewSimulation(p.cfg, p.stageCfg, p.seed)
	p.state = state.StateRunning

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.stageCfg.ID)
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the drawables over the background
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	for _, d := range p.sim.Draw() {
		ebitenutil.DrawRect(screen, d.X, d.Y, d.Width, d.Height, d.Color)
	}

	switch p.state {
	case state.StatePaused:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nESC: resume | R: restart", p.screenW/2-70, p.screenH/2-20)
	case state.StateReplayDone:
		ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED", p.screenW/2-45, p.screenH/2)
	default:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("WASD: move | ESC: pause | R: restart | seed %d", p.seed))
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// State returns the run state
func (p *Playing) State() state.RunState {
	return p.state
}

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 {
	return p.seed
}
