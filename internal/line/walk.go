package line

import (
	"image"
)

// Walk returns every cell on a line from a to b (inclusive) such that each
// cell shares an edge with the one before it.
//
// It's bresenham without diagonal steps: at each step we move along
// whichever axis the ideal line crosses next, preferring y on a tie.
func Walk(a, b image.Point) []image.Point {
	dx, sx := absSign(b.X - a.X)
	dy, sy := absSign(b.Y - a.Y)

	pts := make([]image.Point, 0, dx+dy+1)
	p := a
	pts = append(pts, p)

	for ix, iy := 0, 0; ix < dx || iy < dy; {
		// the line crosses the next x boundary at (0.5+ix)/dx of the way
		// along & the next y boundary at (0.5+iy)/dy
		if (1+2*ix)*dy < (1+2*iy)*dx {
			p.X += sx
			ix++
		} else {
			p.Y += sy
			iy++
		}
		pts = append(pts, p)
	}

	return pts
}

// absSign returns |v| & the sign of v
func absSign(v int) (int, int) {
	switch {
	case v < 0:
		return -v, -1
	case v > 0:
		return v, 1
	}
	return 0, 0
}
