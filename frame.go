package citygrid

import (
	"image"

	"github.com/golang/geo/r2"
)

const (
	// smallest width / height we'll frame
	minFrameSize = 10.0

	// extra space around the city
	frameMargin = 5.0
)

// Frame returns a rectangle (in cell units) that comfortably shows every
// occupied cell; useful for pointing a camera or cropping a map.
// Cells are treated as unit squares, so cell (0,0) spans 0,0 -> 1,1.
func (c *City) Frame() r2.Rect {
	pts := []r2.Point{}
	for _, r := range c.grid.Roads() {
		pts = append(pts, cellCorners(r.At)...)
	}
	for _, b := range c.grid.Buildings() {
		pts = append(pts, cellCorners(b.At)...)
	}

	rect := r2.RectFromCenterSize(r2.Point{X: 0, Y: 0}, r2.Point{X: minFrameSize, Y: minFrameSize})
	if len(pts) > 0 {
		bnds := r2.RectFromPoints(pts...)
		size := bnds.Size()
		if size.X < minFrameSize {
			size.X = minFrameSize
		}
		if size.Y < minFrameSize {
			size.Y = minFrameSize
		}
		rect = r2.RectFromCenterSize(bnds.Center(), size)
	}

	return rect.ExpandedByMargin(frameMargin)
}

// cellCorners returns the min & max corners of a cell
func cellCorners(p image.Point) []r2.Point {
	return []r2.Point{
		{X: float64(p.X), Y: float64(p.Y)},
		{X: float64(p.X + 1), Y: float64(p.Y + 1)},
	}
}
