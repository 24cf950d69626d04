package citygrid

// RoadTile is the shape a road cell is drawn with. It is derived from which
// neighbouring cells hold roads (see Classify) and is never authoritative.
//
// T-junctions are named for the side that has *no* road, ie. TOpenN has
// roads east, south & west with a sidewalk along the north edge.
type RoadTile string

const (
	StraightH RoadTile = "straight-h" // east <-> west
	StraightV RoadTile = "straight-v" // north <-> south
	CornerNE  RoadTile = "corner-ne"  // north & east
	CornerNW  RoadTile = "corner-nw"  // north & west
	CornerSE  RoadTile = "corner-se"  // south & east
	CornerSW  RoadTile = "corner-sw"  // south & west
	TOpenN    RoadTile = "t-open-n"   // all but north
	TOpenE    RoadTile = "t-open-e"   // all but east
	TOpenS    RoadTile = "t-open-s"   // all but south
	TOpenW    RoadTile = "t-open-w"   // all but west
	Cross     RoadTile = "cross"      // all four
)

var (
	allRoadTiles = []RoadTile{
		StraightH, StraightV,
		CornerNE, CornerNW, CornerSE, CornerSW,
		TOpenN, TOpenE, TOpenS, TOpenW,
		Cross,
	}

	// numeric ids are what saved cities store as "roadType"
	roadTileIndex = map[RoadTile]int{
		StraightH: 0,
		StraightV: 1,
		CornerNE:  2,
		CornerNW:  3,
		CornerSE:  4,
		CornerSW:  5,
		TOpenN:    6,
		TOpenE:    7,
		TOpenS:    8,
		TOpenW:    9,
		Cross:     10,
	}

	invRoadTileIndex = map[int]RoadTile{}

	roadTileConnections = map[RoadTile]Connections{
		StraightH: {East: true, West: true},
		StraightV: {North: true, South: true},
		CornerNE:  {North: true, East: true},
		CornerNW:  {North: true, West: true},
		CornerSE:  {South: true, East: true},
		CornerSW:  {South: true, West: true},
		TOpenN:    {East: true, South: true, West: true},
		TOpenE:    {North: true, South: true, West: true},
		TOpenS:    {North: true, East: true, West: true},
		TOpenW:    {North: true, East: true, South: true},
		Cross:     {North: true, East: true, South: true, West: true},
	}
)

func init() {
	for k, v := range roadTileIndex {
		invRoadTileIndex[v] = k
	}
}

// ID returns the numeric id of a road tile, or -1 if the tile is unknown
func (r RoadTile) ID() int {
	v, ok := roadTileIndex[r]
	if !ok {
		return -1
	}
	return v
}

// Valid returns if this is one of the known road tiles
func (r RoadTile) Valid() bool {
	_, ok := roadTileIndex[r]
	return ok
}

// Connections returns the sides this tile is drawn as connecting to.
// Straight tiles always claim both ends, even as a dead end or when isolated.
func (r RoadTile) Connections() Connections {
	return roadTileConnections[r]
}

// RoadTileForID is the inversion of RoadTile.ID()
func RoadTileForID(i int) (RoadTile, bool) {
	tile, ok := invRoadTileIndex[i]
	return tile, ok
}

// AllRoadTiles returns all known RoadTile enums
func AllRoadTiles() []RoadTile {
	return allRoadTiles
}
