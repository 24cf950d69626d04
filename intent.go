package citygrid

import (
	"fmt"
	"image"

	"github.com/voidshard/citygrid/internal/line"
)

// IntentType is what the input layer wants done
type IntentType string

const (
	IntentPlaceBuilding IntentType = "place_building"
	IntentPlaceRoad     IntentType = "place_road"
	IntentPlaceRoadLine IntentType = "place_road_line"
	IntentBulldoze      IntentType = "bulldoze"
	IntentUndo          IntentType = "undo"
	IntentRedo          IntentType = "redo"
)

// Intent is a single request from the input layer (a click, a key press).
// Kind is only read for buildings; Rotation is the building facing or,
// for roads, the rotation hint. ToX & ToZ are the far end of a road line.
type Intent struct {
	Type     IntentType   `json:"type"`
	X        int          `json:"x"`
	Z        int          `json:"z"`
	ToX      int          `json:"toX,omitempty"`
	ToZ      int          `json:"toZ,omitempty"`
	Kind     BuildingKind `json:"kind,omitempty"`
	Rotation Rotation     `json:"rotation,omitempty"`
}

// At returns the cell the intent targets
func (i Intent) At() image.Point {
	return image.Pt(i.X, i.Z)
}

// Outcome is the result of a successful Intent, suitable for sending back to the UI.
type Outcome struct {
	Type     IntentType    `json:"type"`
	Road     *RoadCell     `json:"road,omitempty"`
	Line     []*RoadCell   `json:"line,omitempty"`
	Building *BuildingCell `json:"building,omitempty"`
	Removed  *Removed      `json:"removed,omitempty"`
	Action   *Action       `json:"action,omitempty"`

	// every road tile that differs from before the intent, including
	// neighbours that were re-tiled
	Tiles map[string]RoadTile `json:"tiles,omitempty"`
}

// Apply performs the given intent.
// Errors are the same as the Try* functions; nothing changes on error.
func (c *City) Apply(in Intent) (*Outcome, error) {
	targets := []image.Point{in.At()}
	switch in.Type {
	case IntentPlaceRoadLine:
		targets = line.Walk(in.At(), image.Pt(in.ToX, in.ToZ))
	case IntentUndo:
		if a := c.hist.peekUndo(); a != nil {
			targets[0] = a.At
		}
	case IntentRedo:
		if a := c.hist.peekRedo(); a != nil {
			targets[0] = a.At
		}
	}

	before := c.tileState(targets)
	out := &Outcome{Type: in.Type}

	var err error
	switch in.Type {
	case IntentPlaceBuilding:
		out.Building, err = c.TryPlaceBuilding(in.Kind, in.At(), in.Rotation)
	case IntentPlaceRoad:
		out.Road, err = c.TryPlaceRoad(in.At(), in.Rotation)
	case IntentPlaceRoadLine:
		out.Line, err = c.TryPlaceRoadLine(in.At(), image.Pt(in.ToX, in.ToZ))
	case IntentBulldoze:
		out.Removed, err = c.TryBulldoze(in.At())
	case IntentUndo:
		out.Action, err = c.Undo()
	case IntentRedo:
		out.Action, err = c.Redo()
	default:
		err = fmt.Errorf("unknown intent %q", in.Type)
	}
	if err != nil {
		return nil, err
	}

	out.Tiles = c.tileChanges(before)
	return out, nil
}

// tileState records the tiles of each cell & its neighbours ("" for no road)
func (c *City) tileState(cells []image.Point) map[image.Point]RoadTile {
	state := map[image.Point]RoadTile{}
	for _, p := range cells {
		n := c.grid.Neighbours(p)
		for _, q := range append([]image.Point{p}, n[:]...) {
			state[q] = ""
			if r := c.grid.Road(q); r != nil {
				state[q] = r.Tile
			}
		}
	}
	return state
}

// tileChanges returns "x,z" -> tile for every cell in before whose tile is now different
func (c *City) tileChanges(before map[image.Point]RoadTile) map[string]RoadTile {
	out := map[string]RoadTile{}
	for p, tile := range before {
		now := RoadTile("")
		if r := c.grid.Road(p); r != nil {
			now = r.Tile
		}
		if now != tile {
			out[fmt.Sprintf("%d,%d", p.X, p.Y)] = now
		}
	}
	return out
}
