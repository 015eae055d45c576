package ecs

// TileCoordinate is the discrete grid cell an entity occupies.
// The core never clamps it to the grid.
type TileCoordinate struct {
	X, Y int
}

// PixelCoordinate is the continuous render-space position.
// It converges toward TileCoordinate * CellSize but is never required to equal it.
type PixelCoordinate struct {
	X, Y float64
}

// ProjectTile returns the pixel-space projection of a tile coordinate
func ProjectTile(t TileCoordinate, cellSize float64) PixelCoordinate {
	return PixelCoordinate{X: float64(t.X) * cellSize, Y: float64(t.Y) * cellSize}
}

// Direction is one of the four grid directions, or DirNone
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movement directions in draw order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the tile offset for a direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// MovementIntent is a pending, one-shot movement request
type MovementIntent struct {
	Direction Direction
}

// Pending reports whether the intent holds a direction
func (m MovementIntent) Pending() bool {
	return m.Direction != DirNone
}

// Role selects the intent-generation policy of a movement-capable entity
type Role int

const (
	RolePlayer Role = iota
	RoleAutonomous
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "Player"
	case RoleAutonomous:
		return "Autonomous"
	default:
		return "Unknown"
	}
}

// Color is a fill color with channels in [0, 1].
// It implements color.Color so hosts can hand it straight to a renderer.
type Color struct {
	R, G, B, A float64
}

// RGBA returns alpha-premultiplied 16-bit channels (implements color.Color)
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R) * a / 0xffff
	g = channel16(c.G) * a / 0xffff
	b = channel16(c.B) * a / 0xffff
	return r, g, b, a
}

func channel16(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// Drawable is an axis-aligned filled square produced by the render collector
type Drawable struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}
