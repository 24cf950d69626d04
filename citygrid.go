package citygrid

import (
	"fmt"
	"image"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownBuildingKind implies a building kind we don't know how to place
	ErrUnknownBuildingKind = fmt.Errorf("unknown building kind")

	// ErrBoundsTooLarge implies the configured bounds can't be saved in a snapshot
	ErrBoundsTooLarge = fmt.Errorf("bounds exceed int16 coordinates")
)

// City holds the grid & is the only thing allowed to change it.
//
// A City is not safe for concurrent use; each Try* call runs to completion
// (including re-tiling neighbouring roads) before the next may start.
type City struct {
	cfg *Config

	grid  *GridIndex
	roads *roadNetwork
	hist  *history

	Name        string
	Description string

	Stats *CityStats

	// true if something changed since the last MarkSaved
	dirty bool
}

// New creates an empty city with the given config (nil for defaults)
func New(cfg *Config) (*City, error) {
	cfg = cfg.withDefaults()

	b := cfg.Bounds
	if b.Min.X < math.MinInt16 || b.Min.Y < math.MinInt16 || b.Max.X > math.MaxInt16+1 || b.Max.Y > math.MaxInt16+1 {
		return nil, ErrBoundsTooLarge
	}

	grid := NewGridIndex()
	return &City{
		cfg:  cfg,
		grid: grid,
		roads: &roadNetwork{
			grid:   grid,
			bounds: cfg.Bounds,
			render: cfg.Renderer,
			log:    cfg.Logger,
		},
		hist:  newHistory(cfg.MaxHistory),
		Stats: newCityStats(),
	}, nil
}

// Bounds returns the play field
func (c *City) Bounds() image.Rectangle {
	return c.cfg.Bounds
}

// Road returns the road at p, or nil
func (c *City) Road(p image.Point) *RoadCell {
	return c.grid.Road(p)
}

// Building returns the building at p, or nil
func (c *City) Building(p image.Point) *BuildingCell {
	return c.grid.Building(p)
}

// Roads returns every road, ordered by row
func (c *City) Roads() []*RoadCell {
	return c.grid.Roads()
}

// Buildings returns every building, ordered by row
func (c *City) Buildings() []*BuildingCell {
	return c.grid.Buildings()
}

// HasUnsavedChanges returns if anything changed since MarkSaved was last called
func (c *City) HasUnsavedChanges() bool {
	return c.dirty
}

// MarkSaved tells the city its current state has been persisted
func (c *City) MarkSaved() {
	c.dirty = false
}

// TryPlaceBuilding places a building of the given kind at p
func (c *City) TryPlaceBuilding(kind BuildingKind, p image.Point, rot Rotation) (*BuildingCell, error) {
	around := c.neighbourTiles(p)
	b, err := c.placeBuilding(kind, p, rot)
	if err != nil {
		return nil, err
	}
	c.hist.record(&Action{Type: ActionPlaceBuilding, At: p, Building: kind, Rotation: b.Rotation, Around: around})
	return b, nil
}

// TryPlaceRoad places a road at p. The hint only matters if the new road
// has no neighbouring roads, in which case it decides the orientation.
func (c *City) TryPlaceRoad(p image.Point, hint Rotation) (*RoadCell, error) {
	around := c.neighbourTiles(p)
	r, err := c.placeRoad(p, hint)
	if err != nil {
		return nil, err
	}
	c.hist.record(&Action{Type: ActionPlaceRoad, At: p, Tile: r.Tile, Around: around})
	return r, nil
}

// TryBulldoze removes whatever is at p, checking for a building first then a road.
func (c *City) TryBulldoze(p image.Point) (*Removed, error) {
	around := c.neighbourTiles(p)
	rm, err := c.bulldoze(p)
	if err != nil {
		return nil, err
	}
	a := &Action{Type: ActionBulldoze, At: p, Around: around}
	if rm.Building != nil {
		a.Building = rm.Building.Kind
		a.Rotation = rm.Building.Rotation
	} else {
		a.Tile = rm.Road.Tile
	}
	c.hist.record(a)
	return rm, nil
}

// Undo reverts the most recent action
func (c *City) Undo() (*Action, error) {
	a := c.hist.popUndo()
	if a == nil {
		return nil, ErrNothingToUndo
	}

	var err error
	switch a.Type {
	case ActionPlaceBuilding, ActionPlaceRoad:
		_, err = c.bulldoze(a.At)
	case ActionBulldoze:
		err = c.restore(a)
	}
	if err != nil {
		c.hist.pushUndo(a)
		return nil, errors.Wrapf(err, "failed to undo %s at (%d,%d)", a.Type, a.At.X, a.At.Y)
	}

	// neighbours left with no connections face the way they did before
	for i, np := range c.grid.Neighbours(a.At) {
		c.roads.reorient(np, a.Around[i])
	}

	c.hist.pushRedo(a)
	return a, nil
}

// Redo re-applies the most recently undone action
func (c *City) Redo() (*Action, error) {
	a := c.hist.popRedo()
	if a == nil {
		return nil, ErrNothingToRedo
	}

	var err error
	switch a.Type {
	case ActionPlaceBuilding, ActionPlaceRoad:
		err = c.restore(a)
	case ActionBulldoze:
		_, err = c.bulldoze(a.At)
	}
	if err != nil {
		c.hist.pushRedo(a)
		return nil, errors.Wrapf(err, "failed to redo %s at (%d,%d)", a.Type, a.At.X, a.At.Y)
	}

	c.hist.pushUndo(a)
	return a, nil
}

// HistoryLen returns how many actions can currently be undone & redone
func (c *City) HistoryLen() (undo, redo int) {
	return len(c.hist.undo), len(c.hist.redo)
}

// Clear removes everything from the city & forgets history
func (c *City) Clear() {
	for _, b := range c.grid.Buildings() {
		c.cfg.Renderer.DisposeMesh(b.Handle)
	}
	for _, r := range c.grid.Roads() {
		c.cfg.Renderer.DisposeMesh(r.Handle)
	}
	c.grid.Clear()
	c.hist.clear()
	c.Stats.reset()
	c.dirty = false
}

// neighbourTiles returns the tiles of the roads around p ("" where there is no road)
func (c *City) neighbourTiles(p image.Point) [4]RoadTile {
	out := [4]RoadTile{}
	for i, np := range c.grid.Neighbours(p) {
		if r := c.grid.Road(np); r != nil {
			out[i] = r.Tile
		}
	}
	return out
}

// restore puts back whatever an action describes
func (c *City) restore(a *Action) error {
	if a.Building != "" {
		_, err := c.placeBuilding(a.Building, a.At, a.Rotation)
		return err
	}
	_, err := c.placeRoad(a.At, hintForTile(a.Tile))
	return err
}

// placeBuilding validates & places a building without touching history
func (c *City) placeBuilding(kind BuildingKind, p image.Point, rot Rotation) (*BuildingCell, error) {
	if !kind.Valid() {
		return nil, errors.Wrapf(ErrUnknownBuildingKind, "%q", kind)
	}
	if !p.In(c.cfg.Bounds) {
		return nil, placementErr(OutOfBounds, p)
	}
	if c.grid.HasAny(p) {
		return nil, placementErr(CellOccupied, p)
	}

	rot = rot.Normalize()
	handle, err := c.cfg.Renderer.BuildMesh(Descriptor{At: p, Building: kind, Rotation: rot})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s mesh at (%d,%d)", kind, p.X, p.Y)
	}

	b := &BuildingCell{At: p, Kind: kind, Rotation: rot, Handle: handle}
	c.grid.SetBuilding(b)
	c.Stats.increment(kind)
	c.dirty = true
	return b, nil
}

// placeRoad places a road without touching history
func (c *City) placeRoad(p image.Point, hint Rotation) (*RoadCell, error) {
	r, err := c.roads.placeRoad(p, hint)
	if err != nil {
		return nil, err
	}
	c.Stats.Roads++
	c.dirty = true
	return r, nil
}

// bulldoze removes a building or road without touching history.
// Buildings aren't part of the road network so removing one re-tiles nothing.
func (c *City) bulldoze(p image.Point) (*Removed, error) {
	if b := c.grid.RemoveBuilding(p); b != nil {
		c.cfg.Renderer.DisposeMesh(b.Handle)
		b.Handle = nil
		c.Stats.decrement(b.Kind)
		c.dirty = true
		return &Removed{Building: b}, nil
	}

	r, err := c.roads.removeRoad(p)
	if err != nil {
		return nil, err
	}
	c.Stats.Roads--
	c.dirty = true
	return &Removed{Road: r}, nil
}
