package config

import "fmt"

// SimConfig is the root config for sim.json
type SimConfig struct {
	Display DisplayConfig `json:"display"`
	Grid    GridConfig    `json:"grid"`
	Easing  EasingConfig  `json:"easing"`
	Palette PaletteConfig `json:"palette"`
}

type DisplayConfig struct {
	Title string `json:"title"`
	Scale int    `json:"scale"`
	TPS   int    `json:"tps"` // fixed simulation ticks per second
}

type GridConfig struct {
	Width    int     `json:"width"`    // cells
	Height   int     `json:"height"`   // cells
	CellSize float64 `json:"cellSize"` // pixels
}

// EasingConfig configures the pixel glide toward the tile
type EasingConfig struct {
	Step float64 `json:"step"` // pixels per tick
}

type PaletteConfig struct {
	Background ColorConfig `json:"background"`
	Player     ColorConfig `json:"player"`
	Actor      ColorConfig `json:"actor"`
}

// ColorConfig holds channels in [0, 1]
type ColorConfig struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Validate checks the construction parameters
func (c *SimConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("invalid cell size %v", c.Grid.CellSize)
	}
	if c.Easing.Step <= 0 || c.Easing.Step >= c.Grid.CellSize {
		return fmt.Errorf("easing step %v must be in (0, %v)", c.Easing.Step, c.Grid.CellSize)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Display.TPS)
	}
	return nil
}

// ScreenSize returns the window size in pixels
func (c *SimConfig) ScreenSize() (int, int) {
	return int(float64(c.Grid.Width) * c.Grid.CellSize), int(float64(c.Grid.Height) * c.Grid.CellSize)
}
