package scene

import (
	"github.com/voidshard/citygrid"
)

// Config describes the proportions of generated meshes.
// All sizes are in cell units; a cell is 1x1 & Z is up.
type Config struct {
	// thickness of the road slab
	RoadHeight float64

	// height (above the slab) & width of sidewalks along closed sides
	SidewalkHeight float64
	SidewalkWidth  float64

	// width of the painted lane markings & how far they sit above the slab
	LaneWidth  float64
	LaneHeight float64

	// gap between a building & the edge of its cell
	BuildingInset float64

	// height of each kind of building
	Heights map[citygrid.BuildingKind]float64
}

// DefaultConfig returns the proportions used by the sandbox
func DefaultConfig() *Config {
	return &Config{
		RoadHeight:     0.05,
		SidewalkHeight: 0.04,
		SidewalkWidth:  0.15,
		LaneWidth:      0.04,
		LaneHeight:     0.005,
		BuildingInset:  0.1,
		Heights: map[citygrid.BuildingKind]float64{
			citygrid.Residential: 1.0,
			citygrid.Commercial:  1.6,
			citygrid.Industrial:  0.8,
		},
	}
}
