package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	PlayerSpawn *PositionConfig    `json:"playerSpawn,omitempty"` // nil = bottom center
	Actors      []ActorSpawnConfig `json:"actors"`
	Decorations []DecorationConfig `json:"decorations"`
}

// PositionConfig is a tile coordinate
type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActorSpawnConfig places an autonomous actor. Color falls back to the palette.
type ActorSpawnConfig struct {
	X     int          `json:"x"`
	Y     int          `json:"y"`
	Color *ColorConfig `json:"color,omitempty"`
}

// DecorationConfig places a static colored square at a tile, never moved
type DecorationConfig struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorConfig `json:"color"`
}
