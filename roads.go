package citygrid

import (
	"image"

	"github.com/pkg/errors"
)

// roadNetwork keeps road tiles matching their neighbours.
//
// Every call runs to completion: classify the target cell, write it, then
// re-classify the (at most) four neighbours. Neighbours of neighbours can't
// change since Classify only looks one cell away.
type roadNetwork struct {
	grid   *GridIndex
	bounds image.Rectangle
	render Renderer
	log    Logger
}

// placeRoad classifies & inserts a new road at p, then updates its neighbours
func (n *roadNetwork) placeRoad(p image.Point, hint Rotation) (*RoadCell, error) {
	if !p.In(n.bounds) {
		return nil, placementErr(OutOfBounds, p)
	}
	if n.grid.HasAny(p) {
		return nil, placementErr(CellOccupied, p)
	}

	tile := Classify(n.grid.Connections(p), hint)

	// build first so a failing renderer leaves the grid untouched
	handle, err := n.render.BuildMesh(Descriptor{At: p, Tile: tile})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build road mesh at (%d,%d)", p.X, p.Y)
	}

	cell := &RoadCell{At: p, Tile: tile, Handle: handle}
	n.grid.SetRoad(cell)

	n.refreshNeighbours(p)
	return cell, nil
}

// removeRoad deletes the road at p, then updates its neighbours
func (n *roadNetwork) removeRoad(p image.Point) (*RoadCell, error) {
	cell := n.grid.RemoveRoad(p)
	if cell == nil {
		return nil, placementErr(CellEmpty, p)
	}
	n.render.DisposeMesh(cell.Handle)
	cell.Handle = nil

	n.refreshNeighbours(p)
	return cell, nil
}

// refreshNeighbours re-classifies any road next to p, returning the cells whose
// tile actually changed. Unchanged neighbours keep their mesh.
func (n *roadNetwork) refreshNeighbours(p image.Point) []image.Point {
	changed := []image.Point{}
	for _, np := range n.grid.Neighbours(p) {
		if n.reclassify(np) {
			changed = append(changed, np)
		}
	}
	return changed
}

// reclassifyAll runs a single classification pass over every road.
// Isolated roads keep their orientation, as there is nothing else to derive
// it from.
func (n *roadNetwork) reclassifyAll() int {
	changed := 0
	for _, r := range n.grid.Roads() {
		if n.reclassify(r.At) {
			changed++
		}
	}
	return changed
}

// reclassify recomputes the tile of the road at p (if there is one) from the
// current grid & swaps the mesh if the tile changed.
func (n *roadNetwork) reclassify(p image.Point) bool {
	cell := n.grid.Road(p)
	if cell == nil {
		return false
	}

	// a road left isolated keeps its own orientation
	return n.retile(cell, Classify(n.grid.Connections(p), hintForTile(cell.Tile)))
}

// reorient turns the road at p to face the same way as tile, if it has no
// neighbours. Connected roads are decided by adjacency alone & are left be.
func (n *roadNetwork) reorient(p image.Point, tile RoadTile) bool {
	cell := n.grid.Road(p)
	if cell == nil || tile == "" || n.grid.Connections(p).Count() != 0 {
		return false
	}
	return n.retile(cell, Classify(Connections{}, hintForTile(tile)))
}

// retile swaps the tile (& mesh) of cell, returning false if nothing changed
func (n *roadNetwork) retile(cell *RoadCell, tile RoadTile) bool {
	if tile == cell.Tile {
		return false
	}
	p := cell.At

	n.render.DisposeMesh(cell.Handle)
	cell.Tile = tile

	handle, err := n.render.BuildMesh(Descriptor{At: p, Tile: tile})
	if err != nil {
		// the tile must follow the grid regardless, we just have nothing to show
		n.log.Printf("failed to rebuild road mesh at (%d,%d): %v", p.X, p.Y, err)
		handle = nil
	}
	cell.Handle = handle
	return true
}

// hintForTile returns a rotation hint that makes Classify produce the same
// orientation for an isolated road as the given tile
func hintForTile(t RoadTile) Rotation {
	if t == StraightV {
		return 1
	}
	return 0
}
