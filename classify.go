package citygrid

import (
	"github.com/voidshard/citygrid/internal/encoding"

	"github.com/boljen/go-bitmap"
)

const (
	// bit numbers for a connection mask
	bitNorth = 0
	bitEast  = 1
	bitSouth = 2
	bitWest  = 3
)

// Connections records which of the four direct neighbours of a cell hold a road.
type Connections struct {
	North bool
	East  bool
	South bool
	West  bool
}

// Count returns the number of connected sides
func (c Connections) Count() int {
	n := 0
	for _, b := range []bool{c.North, c.East, c.South, c.West} {
		if b {
			n++
		}
	}
	return n
}

// Mask packs the connections into the low four bits of a byte
func (c Connections) Mask() uint8 {
	bm := bitmap.New(8)
	bm.Set(bitNorth, c.North)
	bm.Set(bitEast, c.East)
	bm.Set(bitSouth, c.South)
	bm.Set(bitWest, c.West)
	return encoding.FromBytes8(bm.Data(true))
}

// ConnectionsFromMask is the inversion of Connections.Mask()
func ConnectionsFromMask(m uint8) Connections {
	bm := bitmap.Bitmap(encoding.ToBytes8(m))
	return Connections{
		North: bm.Get(bitNorth),
		East:  bm.Get(bitEast),
		South: bm.Get(bitSouth),
		West:  bm.Get(bitWest),
	}
}

// Classify returns the road tile for a cell with the given connections.
//
// A road with no neighbours has no orientation of its own so the hint
// (the user's currently selected rotation) decides; even is horizontal,
// odd is vertical. Everything else is decided by adjacency alone.
func Classify(c Connections, hint Rotation) RoadTile {
	switch c.Count() {
	case 0:
		if hint.Normalize()%2 == 0 {
			return StraightH
		}
		return StraightV
	case 1:
		// a dead end is drawn as a through road along the single connection
		if c.North || c.South {
			return StraightV
		}
		return StraightH
	case 2:
		switch {
		case c.North && c.South:
			return StraightV
		case c.East && c.West:
			return StraightH
		case c.North && c.East:
			return CornerNE
		case c.North && c.West:
			return CornerNW
		case c.South && c.East:
			return CornerSE
		default:
			return CornerSW
		}
	case 3:
		switch {
		case !c.North:
			return TOpenN
		case !c.East:
			return TOpenE
		case !c.South:
			return TOpenS
		default:
			return TOpenW
		}
	}
	return Cross
}
