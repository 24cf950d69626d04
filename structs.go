package citygrid

import (
	"image"
)

// RoadCell is a single road square
type RoadCell struct {
	At   image.Point
	Tile RoadTile

	// whatever the Renderer gave us for the current Tile
	Handle RenderHandle `json:"-"`
}

// BuildingCell is a single building square.
// Buildings never change once placed, they're only ever removed.
type BuildingCell struct {
	At       image.Point
	Kind     BuildingKind
	Rotation Rotation

	Handle RenderHandle `json:"-"`
}

// Removed is what TryBulldoze took away; only one of the two is set.
type Removed struct {
	Road     *RoadCell     `json:",omitempty"`
	Building *BuildingCell `json:",omitempty"`
}

// CityStats holds generic stats about the city
type CityStats struct {
	// Count of buildings of a given kind
	BuildingsByKind map[BuildingKind]int

	Roads      int
	Population float64
}

// newCityStats returns blank CityStats
func newCityStats() *CityStats {
	return &CityStats{BuildingsByKind: map[BuildingKind]int{}}
}

// increment BuildingsByKind by 1
func (c *CityStats) increment(k BuildingKind) {
	c.BuildingsByKind[k]++
}

// decrement BuildingsByKind by 1
func (c *CityStats) decrement(k BuildingKind) {
	c.BuildingsByKind[k]--
}

// Count returns number of buildings of the given kind
func (c *CityStats) Count(k BuildingKind) int {
	return c.BuildingsByKind[k]
}

// reset everything to zero
func (c *CityStats) reset() {
	c.BuildingsByKind = map[BuildingKind]int{}
	c.Roads = 0
	c.Population = 0
}
