// Package audio plays short synthesized cues through beep.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/frogbeat/internal/ecs"
)

// SampleRate is the speaker rate for all cues
const SampleRate = beep.SampleRate(44100)

// Step cue pitches per direction (Hz)
var stepTones = map[ecs.Direction]float64{
	ecs.DirUp:    880,
	ecs.DirDown:  440,
	ecs.DirLeft:  587.33,
	ecs.DirRight: 659.25,
}

// Cue plays a short tone each time the player changes tile
type Cue struct {
	rate     beep.SampleRate
	duration time.Duration
	volume   float64 // log2 gain, 0 = unchanged

	enabled bool
	play    func(...beep.Streamer)
}

// NewCue creates a silent cue; call Init to open the speaker
func NewCue(duration time.Duration, volume float64) *Cue {
	return &Cue{
		rate:     SampleRate,
		duration: duration,
		volume:   volume,
	}
}

// Init opens the speaker. Failure leaves the cue silent.
func (c *Cue) Init() error {
	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	c.enabled = true
	c.play = speaker.Play
	return nil
}

// Close releases the speaker if it was opened
func (c *Cue) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}

// Enabled reports whether cues reach a speaker
func (c *Cue) Enabled() bool {
	return c.enabled
}

// Tone returns a finite sine streamer of the cue's duration
func (c *Cue) Tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone %.1f Hz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(c.rate.N(c.duration), sine),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

// Step plays the tone for the direction moved from one tile to the next.
// It matches Simulation.OnPlayerStep.
func (c *Cue) Step(from, to ecs.TileCoordinate) {
	if !c.enabled {
		return
	}

	freq, ok := stepTones[StepDirection(from, to)]
	if !ok {
		return
	}
	s, err := c.Tone(freq)
	if err != nil {
		log.Printf("Step cue failed: %v", err)
		return
	}
	c.play(s)
}

// StepDirection returns the direction of a single-tile step, DirNone otherwise
func StepDirection(from, to ecs.TileCoordinate) ecs.Direction {
	for _, d := range ecs.Directions {
		dx, dy := d.Delta()
		if from.X+dx == to.X && from.Y+dy == to.Y {
			return d
		}
	}
	return ecs.DirNone
}
