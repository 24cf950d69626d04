package citygrid

import (
	"testing"
)

func TestClassifyAllPatterns(t *testing.T) {
	cases := []struct {
		n, e, s, w bool
		hint       Rotation
		expect     RoadTile
	}{
		{false, false, false, false, 0, StraightH},
		{false, false, false, false, 1, StraightV},
		{false, false, false, false, 2, StraightH},
		{false, false, false, false, 3, StraightV},

		{true, false, false, false, 0, StraightV},
		{false, true, false, false, 1, StraightH},
		{false, false, true, false, 0, StraightV},
		{false, false, false, true, 1, StraightH},

		{true, false, true, false, 0, StraightV},
		{false, true, false, true, 1, StraightH},
		{true, true, false, false, 0, CornerNE},
		{true, false, false, true, 0, CornerNW},
		{false, true, true, false, 0, CornerSE},
		{false, false, true, true, 0, CornerSW},

		{false, true, true, true, 0, TOpenN},
		{true, false, true, true, 0, TOpenE},
		{true, true, false, true, 0, TOpenS},
		{true, true, true, false, 0, TOpenW},

		{true, true, true, true, 0, Cross},
	}

	for _, tc := range cases {
		conn := Connections{North: tc.n, East: tc.e, South: tc.s, West: tc.w}
		got := Classify(conn, tc.hint)
		if got != tc.expect {
			t.Errorf("Classify(%+v, %d): expected %s got %s", conn, tc.hint, tc.expect, got)
		}
	}
}

func TestClassifyIgnoresHintWhenConnected(t *testing.T) {
	for m := 1; m < 16; m++ {
		conn := connFromBits(m)
		first := Classify(conn, 0)
		for hint := Rotation(1); hint < 4; hint++ {
			if got := Classify(conn, hint); got != first {
				t.Errorf("%+v: hint %d gave %s, hint 0 gave %s", conn, hint, got, first)
			}
		}
	}
}

func TestClassifyTwoConnectionsAreDistinct(t *testing.T) {
	seen := map[RoadTile]Connections{}
	for m := 0; m < 16; m++ {
		conn := connFromBits(m)
		if conn.Count() != 2 {
			continue
		}
		tile := Classify(conn, 0)
		if tile == StraightH || tile == StraightV {
			continue
		}
		if prev, ok := seen[tile]; ok {
			t.Errorf("%s produced by both %+v and %+v", tile, prev, conn)
		}
		seen[tile] = conn
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 corner tiles, got %d", len(seen))
	}
}

func TestClassifyVerticalPairIgnoresSides(t *testing.T) {
	// north & south only -> vertical, regardless of hint
	for hint := Rotation(0); hint < 4; hint++ {
		if got := Classify(Connections{North: true, South: true}, hint); got != StraightV {
			t.Errorf("expected %s got %s", StraightV, got)
		}
	}
}

func TestTileConnectionsAreFixedPoints(t *testing.T) {
	for _, tile := range AllRoadTiles() {
		conn := tile.Connections()
		if got := Classify(conn, hintForTile(tile)); got != tile {
			t.Errorf("%s claims %+v which classifies as %s", tile, conn, got)
		}
	}
}

func TestConnectionsMaskRoundTrip(t *testing.T) {
	masks := map[uint8]bool{}
	for m := 0; m < 16; m++ {
		conn := connFromBits(m)
		back := ConnectionsFromMask(conn.Mask())
		if back != conn {
			t.Errorf("mask %d: %+v came back as %+v", m, conn, back)
		}
		masks[conn.Mask()] = true
	}
	if len(masks) != 16 {
		t.Errorf("expected 16 distinct masks, got %d", len(masks))
	}
}

func TestRoadTileIDs(t *testing.T) {
	for i, tile := range AllRoadTiles() {
		if tile.ID() != i {
			t.Errorf("%s: expected id %d got %d", tile, i, tile.ID())
		}
		back, ok := RoadTileForID(i)
		if !ok || back != tile {
			t.Errorf("id %d: expected %s got %s", i, tile, back)
		}
	}
	if _, ok := RoadTileForID(11); ok {
		t.Error("expected id 11 to be unknown")
	}
	if RoadTile("diagonal").Valid() {
		t.Error("expected unknown tile to be invalid")
	}
}

func TestRotationNormalize(t *testing.T) {
	cases := map[Rotation]Rotation{0: 0, 3: 3, 4: 0, 5: 1, -1: 3, -4: 0}
	for in, expect := range cases {
		if got := in.Normalize(); got != expect {
			t.Errorf("%d: expected %d got %d", in, expect, got)
		}
	}
}

// connFromBits builds one of the 16 connection patterns, N E S W from the low bit up
func connFromBits(m int) Connections {
	return Connections{
		North: m&1 != 0,
		East:  m&2 != 0,
		South: m&4 != 0,
		West:  m&8 != 0,
	}
}
