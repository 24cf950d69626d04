package citygrid

import (
	"image"

	"github.com/voidshard/citygrid/internal/line"
)

// TryPlaceRoadLine places roads on every cell of a line from a to b, as when
// a road is dragged out. Cells that already hold a road are kept.
//
// Either the whole line is placed or nothing is. Each new road is recorded
// in history on its own.
func (c *City) TryPlaceRoadLine(a, b image.Point) ([]*RoadCell, error) {
	pts := line.Walk(a, b)

	hint := Rotation(0)
	d := b.Sub(a)
	if d.X*d.X < d.Y*d.Y {
		hint = 1
	}

	todo := []image.Point{}
	for _, p := range pts {
		if !p.In(c.cfg.Bounds) {
			return nil, placementErr(OutOfBounds, p)
		}
		if c.grid.HasBuilding(p) {
			return nil, placementErr(CellOccupied, p)
		}
		if !c.grid.HasRoad(p) {
			todo = append(todo, p)
		}
	}

	before := c.tileState(todo)
	wasDirty := c.dirty

	placed := []*RoadCell{}
	actions := []*Action{}
	for _, p := range todo {
		around := c.neighbourTiles(p)
		r, err := c.placeRoad(p, hint)
		if err != nil {
			c.unwindRoadLine(placed, before)
			c.dirty = wasDirty
			return nil, err
		}
		placed = append(placed, r)
		actions = append(actions, &Action{Type: ActionPlaceRoad, At: r.At, Around: around})
	}

	for i, a := range actions {
		a.Tile = placed[i].Tile
		c.hist.record(a)
	}
	return placed, nil
}

// unwindRoadLine removes the given roads (newest first) & turns any road left
// isolated back the way it faced before the line was started
func (c *City) unwindRoadLine(placed []*RoadCell, before map[image.Point]RoadTile) {
	for i := len(placed) - 1; i >= 0; i-- {
		p := placed[i].At
		if _, err := c.bulldoze(p); err != nil {
			c.cfg.Logger.Printf("failed to remove road at (%d,%d) from an unfinished line: %v", p.X, p.Y, err)
		}
	}
	for p, tile := range before {
		c.roads.reorient(p, tile)
	}
}
