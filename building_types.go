package citygrid

import (
	"fmt"
)

// BuildingKind is the zone a building belongs to
type BuildingKind string

const (
	Residential BuildingKind = "residential" // houses; adds housing capacity
	Commercial  BuildingKind = "commercial"  // shops & offices; adds jobs
	Industrial  BuildingKind = "industrial"  // factories
)

var allBuildingKinds = []BuildingKind{Residential, Commercial, Industrial}

// Valid returns if this is a known building kind
func (b BuildingKind) Valid() bool {
	switch b {
	case Residential, Commercial, Industrial:
		return true
	}
	return false
}

// AllBuildingKinds returns all known BuildingKind enums
func AllBuildingKinds() []BuildingKind {
	return allBuildingKinds
}

// ParseBuildingKind returns the BuildingKind matching s
func ParseBuildingKind(s string) (BuildingKind, error) {
	b := BuildingKind(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown building kind %q", s)
	}
	return b, nil
}

// Rotation is a number of clockwise quarter turns, 0-3
type Rotation int

// Normalize wraps any int into 0-3
func (r Rotation) Normalize() Rotation {
	v := int(r) % 4
	if v < 0 {
		v += 4
	}
	return Rotation(v)
}

// Valid returns if r is already in the range 0-3
func (r Rotation) Valid() bool {
	return r >= 0 && r <= 3
}
