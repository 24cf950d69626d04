package citygrid

import (
	"errors"
	"testing"
)

func TestApplyReportsRetiledNeighbours(t *testing.T) {
	c, _, _ := newTestCity(t)
	mustRoad(t, c, 0, 0)
	mustRoad(t, c, 1, 0)

	out, err := c.Apply(Intent{Type: IntentPlaceRoad, X: 0, Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	if out.Road == nil || out.Road.Tile != StraightV {
		t.Fatalf("expected new %s road, got %+v", StraightV, out.Road)
	}

	expect := map[string]RoadTile{"0,1": StraightV, "0,0": CornerSE}
	if len(out.Tiles) != len(expect) {
		t.Errorf("expected %d tile changes, got %v", len(expect), out.Tiles)
	}
	for k, v := range expect {
		if out.Tiles[k] != v {
			t.Errorf("%s: expected %s got %s", k, v, out.Tiles[k])
		}
	}
}

func TestApplyUndoRedo(t *testing.T) {
	c, _, _ := newTestCity(t)
	mustRoad(t, c, 0, 0)
	mustRoad(t, c, 1, 0)

	out, err := c.Apply(Intent{Type: IntentUndo})
	if err != nil {
		t.Fatal(err)
	}
	if out.Action == nil || out.Action.Type != ActionPlaceRoad {
		t.Fatalf("unexpected action %+v", out.Action)
	}
	// (1,0) is gone, (0,0) is isolated but keeps its horizontal tile
	if v, ok := out.Tiles["1,0"]; !ok || v != "" {
		t.Errorf("expected (1,0) reported removed, got %v", out.Tiles)
	}

	out, err = c.Apply(Intent{Type: IntentRedo})
	if err != nil {
		t.Fatal(err)
	}
	if out.Tiles["1,0"] != StraightH {
		t.Errorf("expected (1,0) back as %s, got %v", StraightH, out.Tiles)
	}
}

func TestApplyBuildingAndBulldoze(t *testing.T) {
	c, _, _ := newTestCity(t)

	out, err := c.Apply(Intent{Type: IntentPlaceBuilding, X: 2, Z: 2, Kind: Industrial, Rotation: 5})
	if err != nil {
		t.Fatal(err)
	}
	if out.Building == nil || out.Building.Rotation != 1 {
		t.Errorf("expected building with rotation 1, got %+v", out.Building)
	}
	if len(out.Tiles) != 0 {
		t.Errorf("expected no tile changes, got %v", out.Tiles)
	}

	out, err = c.Apply(Intent{Type: IntentBulldoze, X: 2, Z: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Removed == nil || out.Removed.Building == nil {
		t.Errorf("expected a removed building, got %+v", out.Removed)
	}
}

func TestApplyErrors(t *testing.T) {
	c, _, _ := newTestCity(t)
	mustRoad(t, c, 0, 0)

	if _, err := c.Apply(Intent{Type: IntentPlaceRoad, X: 0, Z: 0}); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
	if _, err := c.Apply(Intent{Type: IntentRedo}); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
	if _, err := c.Apply(Intent{Type: "teleport"}); err == nil {
		t.Error("expected an error for an unknown intent")
	}
}

func TestApplyRoadLine(t *testing.T) {
	c, _, _ := newTestCity(t)
	mustRoad(t, c, 0, -1)

	out, err := c.Apply(Intent{Type: IntentPlaceRoadLine, X: 0, Z: 0, ToX: 2, ToZ: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Line) != 3 {
		t.Fatalf("expected 3 roads, got %d", len(out.Line))
	}

	expect := map[string]RoadTile{"0,-1": StraightV, "0,0": CornerNE, "1,0": StraightH, "2,0": StraightH}
	if len(out.Tiles) != len(expect) {
		t.Errorf("expected %d tile changes, got %v", len(expect), out.Tiles)
	}
	for k, v := range expect {
		if out.Tiles[k] != v {
			t.Errorf("%s: expected %s got %s", k, v, out.Tiles[k])
		}
	}
}
