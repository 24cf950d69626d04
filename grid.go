package citygrid

import (
	"image"
	"sort"
)

var (
	// neighbour offsets in N, E, S, W order. North is towards -z (image.Point.Y - 1).
	offsetNorth = image.Pt(0, -1)
	offsetEast  = image.Pt(1, 0)
	offsetSouth = image.Pt(0, 1)
	offsetWest  = image.Pt(-1, 0)
)

// GridIndex is a sparse map of which cells hold roads & which hold buildings.
// It does no validation of its own; callers are expected to keep a cell in at
// most one of the two maps.
type GridIndex struct {
	roads     map[image.Point]*RoadCell
	buildings map[image.Point]*BuildingCell
}

// NewGridIndex returns an empty index
func NewGridIndex() *GridIndex {
	return &GridIndex{
		roads:     map[image.Point]*RoadCell{},
		buildings: map[image.Point]*BuildingCell{},
	}
}

// HasRoad returns if there is a road at p
func (g *GridIndex) HasRoad(p image.Point) bool {
	_, ok := g.roads[p]
	return ok
}

// HasBuilding returns if there is a building at p
func (g *GridIndex) HasBuilding(p image.Point) bool {
	_, ok := g.buildings[p]
	return ok
}

// HasAny returns if there is a road or building at p
func (g *GridIndex) HasAny(p image.Point) bool {
	return g.HasRoad(p) || g.HasBuilding(p)
}

// Road returns the road at p, or nil
func (g *GridIndex) Road(p image.Point) *RoadCell {
	return g.roads[p]
}

// Building returns the building at p, or nil
func (g *GridIndex) Building(p image.Point) *BuildingCell {
	return g.buildings[p]
}

// SetRoad stores r at r.At
func (g *GridIndex) SetRoad(r *RoadCell) {
	g.roads[r.At] = r
}

// RemoveRoad deletes & returns the road at p (if any)
func (g *GridIndex) RemoveRoad(p image.Point) *RoadCell {
	r, ok := g.roads[p]
	if !ok {
		return nil
	}
	delete(g.roads, p)
	return r
}

// SetBuilding stores b at b.At
func (g *GridIndex) SetBuilding(b *BuildingCell) {
	g.buildings[b.At] = b
}

// RemoveBuilding deletes & returns the building at p (if any)
func (g *GridIndex) RemoveBuilding(p image.Point) *BuildingCell {
	b, ok := g.buildings[p]
	if !ok {
		return nil
	}
	delete(g.buildings, p)
	return b
}

// Neighbours returns the four cells sharing an edge with p, in N, E, S, W order.
func (g *GridIndex) Neighbours(p image.Point) [4]image.Point {
	return [4]image.Point{
		p.Add(offsetNorth),
		p.Add(offsetEast),
		p.Add(offsetSouth),
		p.Add(offsetWest),
	}
}

// Connections returns which neighbours of p currently hold roads.
// Whatever is at p itself doesn't matter.
func (g *GridIndex) Connections(p image.Point) Connections {
	n := g.Neighbours(p)
	return Connections{
		North: g.HasRoad(n[0]),
		East:  g.HasRoad(n[1]),
		South: g.HasRoad(n[2]),
		West:  g.HasRoad(n[3]),
	}
}

// Roads returns every road ordered by z (Y) then x
func (g *GridIndex) Roads() []*RoadCell {
	out := make([]*RoadCell, 0, len(g.roads))
	for _, r := range g.roads {
		out = append(out, r)
	}
	sort.Slice(out, func(a, b int) bool {
		return pointLess(out[a].At, out[b].At)
	})
	return out
}

// Buildings returns every building ordered by z (Y) then x
func (g *GridIndex) Buildings() []*BuildingCell {
	out := make([]*BuildingCell, 0, len(g.buildings))
	for _, b := range g.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(a, b int) bool {
		return pointLess(out[a].At, out[b].At)
	})
	return out
}

// Len returns the number of roads & buildings
func (g *GridIndex) Len() (roads, buildings int) {
	return len(g.roads), len(g.buildings)
}

// Clear empties the index
func (g *GridIndex) Clear() {
	g.roads = map[image.Point]*RoadCell{}
	g.buildings = map[image.Point]*BuildingCell{}
}

// pointLess orders points row by row
func pointLess(a, b image.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
