package ecs

import "sort"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all attribute stores and the next entity ID
type World struct {
	nextID EntityID

	// Attributes
	Tile   *Store[TileCoordinate]
	Pixel  *Store[PixelCoordinate]
	Intent *Store[MovementIntent]
	Color  *Store[Color]
	Role   *Store[Role]

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID: 1, // 0 is "nil"
		Tile:   NewStore[TileCoordinate](),
		Pixel:  NewStore[PixelCoordinate](),
		Intent: NewStore[MovementIntent](),
		Color:  NewStore[Color](),
		Role:   NewStore[Role](),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Attribute attaches one attribute to a freshly created entity
type Attribute func(w *World, id EntityID)

// WithTile attaches a tile coordinate
func WithTile(x, y int) Attribute {
	return func(w *World, id EntityID) { w.Tile.Set(id, TileCoordinate{X: x, Y: y}) }
}

// WithPixel attaches a pixel coordinate
func WithPixel(x, y float64) Attribute {
	return func(w *World, id EntityID) { w.Pixel.Set(id, PixelCoordinate{X: x, Y: y}) }
}

// WithIntent attaches an empty movement intent
func WithIntent() Attribute {
	return func(w *World, id EntityID) { w.Intent.Set(id, MovementIntent{}) }
}

// WithColor attaches a fill color
func WithColor(c Color) Attribute {
	return func(w *World, id EntityID) { w.Color.Set(id, c) }
}

// WithRole attaches a role tag. A player role also sets PlayerID.
func WithRole(r Role) Attribute {
	return func(w *World, id EntityID) {
		w.Role.Set(id, r)
		if r == RolePlayer {
			w.PlayerID = id
		}
	}
}

// Create makes an entity carrying any subset of attributes
func (w *World) Create(attrs ...Attribute) EntityID {
	id := w.NewEntity()
	for _, attr := range attrs {
		attr(w, id)
	}
	return id
}

// CreatePlayer creates the player entity with its pixel position snapped to the tile
func (w *World) CreatePlayer(tx, ty int, c Color, cellSize float64) EntityID {
	px := ProjectTile(TileCoordinate{X: tx, Y: ty}, cellSize)
	return w.Create(
		WithTile(tx, ty),
		WithPixel(px.X, px.Y),
		WithIntent(),
		WithColor(c),
		WithRole(RolePlayer),
	)
}

// CreateActor creates an autonomously moving entity
func (w *World) CreateActor(tx, ty int, c Color, cellSize float64) EntityID {
	px := ProjectTile(TileCoordinate{X: tx, Y: ty}, cellSize)
	return w.Create(
		WithTile(tx, ty),
		WithPixel(px.X, px.Y),
		WithIntent(),
		WithColor(c),
		WithRole(RoleAutonomous),
	)
}

// CreateDecoration creates a drawn entity that never moves
func (w *World) CreateDecoration(px, py float64, c Color) EntityID {
	return w.Create(WithPixel(px, py), WithColor(c))
}

// DestroyEntity removes all attributes for an entity
func (w *World) DestroyEntity(id EntityID) {
	w.Tile.Remove(id)
	w.Pixel.Remove(id)
	w.Intent.Remove(id)
	w.Color.Remove(id)
	w.Role.Remove(id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Query returns the entities present in every given store.
// Results follow the dense order of the smallest store.
func (w *World) Query(stores ...Queryable) []EntityID {
	if len(stores) == 0 {
		return []EntityID{}
	}

	sorted := make([]Queryable, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Len() < sorted[j].Len()
	})

	candidates := sorted[0].Entities()
	for _, store := range sorted[1:] {
		filtered := candidates[:0]
		for _, id := range candidates {
			if store.Has(id) {
				filtered = append(filtered, id)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}

// RoleOf returns the entity's role, defaulting to RolePlayer when untagged
func (w *World) RoleOf(id EntityID) Role {
	if r, ok := w.Role.Value(id); ok {
		return r
	}
	return RolePlayer
}

// CountActors returns the number of autonomous entities
func (w *World) CountActors() int {
	n := 0
	w.Role.Each(func(_ EntityID, r *Role) {
		if *r == RoleAutonomous {
			n++
		}
	})
	return n
}
