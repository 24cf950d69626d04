package citygrid

import (
	"errors"
	"image"
	"testing"
)

func TestRoadLine(t *testing.T) {
	c, _, _ := newTestCity(t)
	mustRoad(t, c, 2, 0)

	placed, err := c.TryPlaceRoadLine(image.Pt(0, 0), image.Pt(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(placed) != 4 {
		t.Errorf("expected 4 new roads, got %d", len(placed))
	}
	for x := 1; x <= 3; x++ {
		if got := tileAt(t, c, x, 0); got != StraightH {
			t.Errorf("(%d,0): expected %s got %s", x, StraightH, got)
		}
	}
	if undo, _ := c.HistoryLen(); undo != 5 {
		t.Errorf("expected 5 undoable actions, got %d", undo)
	}
	checkTileInvariant(t, c)
}

func TestRoadLineVerticalAndL(t *testing.T) {
	c, _, _ := newTestCity(t)

	if _, err := c.TryPlaceRoadLine(image.Pt(0, 0), image.Pt(0, 3)); err != nil {
		t.Fatal(err)
	}
	if got := tileAt(t, c, 0, 1); got != StraightV {
		t.Errorf("expected %s got %s", StraightV, got)
	}

	// an L
	if _, err := c.TryPlaceRoadLine(image.Pt(0, 3), image.Pt(3, 3)); err != nil {
		t.Fatal(err)
	}
	if got := tileAt(t, c, 0, 3); got != CornerNE {
		t.Errorf("expected %s got %s", CornerNE, got)
	}
	checkTileInvariant(t, c)
}

func TestRoadLineIsAllOrNothing(t *testing.T) {
	c, mr, _ := newTestCity(t)
	c.TryPlaceBuilding(Residential, image.Pt(3, 0), 0)

	if _, err := c.TryPlaceRoadLine(image.Pt(0, 0), image.Pt(5, 0)); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
	if _, err := c.TryPlaceRoadLine(image.Pt(40, 0), image.Pt(60, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if len(c.Roads()) != 0 {
		t.Errorf("expected no roads, got %d", len(c.Roads()))
	}

	// the renderer gives up half way
	count := 0
	mr.failOn = func(d Descriptor) bool {
		if d.IsRoad() {
			count++
		}
		return count > 3
	}
	if _, err := c.TryPlaceRoadLine(image.Pt(0, 5), image.Pt(9, 5)); !errors.Is(err, errMockRender) {
		t.Errorf("expected renderer error, got %v", err)
	}
	mr.failOn = nil
	if len(c.Roads()) != 0 || c.Stats.Roads != 0 {
		t.Errorf("expected line rolled back, got %d roads", len(c.Roads()))
	}
	if len(mr.live) != 1 {
		t.Errorf("expected only the building mesh to be live, got %d", len(mr.live))
	}
	if undo, _ := c.HistoryLen(); undo != 1 {
		t.Errorf("expected only the building in history, got %d", undo)
	}
}

func TestRoadLineRollbackRestoresNeighbours(t *testing.T) {
	c, mr, _ := newTestCity(t)
	if _, err := c.TryPlaceRoad(image.Pt(5, 0), 1); err != nil {
		t.Fatal(err)
	}
	c.MarkSaved()

	mr.failOn = func(d Descriptor) bool {
		return d.IsRoad() && d.At == image.Pt(1, 0)
	}
	if _, err := c.TryPlaceRoadLine(image.Pt(4, 0), image.Pt(0, 0)); !errors.Is(err, errMockRender) {
		t.Fatalf("expected renderer error, got %v", err)
	}
	mr.failOn = nil

	if len(c.Roads()) != 1 {
		t.Errorf("expected 1 road, got %d", len(c.Roads()))
	}
	if got := tileAt(t, c, 5, 0); got != StraightV {
		t.Errorf("expected (5,0) back to %s got %s", StraightV, got)
	}
	if len(mr.live) != 1 {
		t.Errorf("expected 1 live mesh, got %d", len(mr.live))
	}
	if c.HasUnsavedChanges() {
		t.Error("expected a rolled back line to leave the city saved")
	}
	if undo, _ := c.HistoryLen(); undo != 1 {
		t.Errorf("expected 1 undoable action, got %d", undo)
	}
}
