package citygrid

import (
	"image"
	"testing"
)

func TestGridNeighboursOrder(t *testing.T) {
	g := NewGridIndex()
	n := g.Neighbours(image.Pt(3, 7))
	expect := [4]image.Point{{3, 6}, {4, 7}, {3, 8}, {2, 7}}
	if n != expect {
		t.Fatalf("expected %v got %v", expect, n)
	}
}

func TestGridRoadsAndBuildings(t *testing.T) {
	g := NewGridIndex()
	p := image.Pt(1, 1)
	q := image.Pt(2, 1)

	g.SetRoad(&RoadCell{At: p, Tile: StraightH})
	g.SetBuilding(&BuildingCell{At: q, Kind: Commercial})

	if !g.HasRoad(p) || g.HasBuilding(p) || !g.HasAny(p) {
		t.Errorf("expected only a road at %v", p)
	}
	if !g.HasBuilding(q) || g.HasRoad(q) || !g.HasAny(q) {
		t.Errorf("expected only a building at %v", q)
	}
	if g.HasAny(image.Pt(9, 9)) {
		t.Error("expected nothing at 9,9")
	}

	roads, buildings := g.Len()
	if roads != 1 || buildings != 1 {
		t.Errorf("expected 1 & 1, got %d & %d", roads, buildings)
	}

	if r := g.RemoveRoad(p); r == nil || r.At != p {
		t.Errorf("expected to remove road at %v, got %v", p, r)
	}
	if g.RemoveRoad(p) != nil {
		t.Error("expected second removal to return nil")
	}
	if b := g.RemoveBuilding(q); b == nil || b.Kind != Commercial {
		t.Errorf("expected to remove commercial building, got %v", b)
	}
	if g.HasAny(p) || g.HasAny(q) {
		t.Error("expected grid to be empty")
	}
}

func TestGridConnections(t *testing.T) {
	g := NewGridIndex()
	g.SetRoad(&RoadCell{At: image.Pt(0, -1)})
	g.SetRoad(&RoadCell{At: image.Pt(-1, 0)})
	g.SetBuilding(&BuildingCell{At: image.Pt(1, 0)})

	conn := g.Connections(image.Pt(0, 0))
	expect := Connections{North: true, West: true}
	if conn != expect {
		t.Fatalf("expected %+v got %+v (buildings must not count)", expect, conn)
	}
}

func TestGridRoadsAreOrdered(t *testing.T) {
	g := NewGridIndex()
	for _, p := range []image.Point{{5, 2}, {-3, 2}, {0, -4}, {1, 2}} {
		g.SetRoad(&RoadCell{At: p})
	}

	expect := []image.Point{{0, -4}, {-3, 2}, {1, 2}, {5, 2}}
	roads := g.Roads()
	for i, r := range roads {
		if r.At != expect[i] {
			t.Errorf("index %d: expected %v got %v", i, expect[i], r.At)
		}
	}
}
