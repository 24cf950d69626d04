// Package citymap draws a top down picture of a city.
//
// Map is a citygrid.Renderer; hand it to citygrid.Config & it keeps track of
// every road & building as they're placed.
package citymap

import (
	"image"
	"math"

	"github.com/voidshard/citygrid"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
)

const (
	// DefaultCellSize is the default width (in pixels) of one cell
	DefaultCellSize = 16

	// road width & lane marking width as a fraction of a cell
	roadWidth = 0.8
	laneWidth = 0.08

	// building footprint as a fraction of a cell
	buildingSize = 0.8
)

// entry is our render handle
type entry struct {
	d citygrid.Descriptor
}

// Map remembers what occupies each cell
type Map struct {
	cells map[image.Point]*entry
}

// New returns an empty Map
func New() *Map {
	return &Map{cells: map[image.Point]*entry{}}
}

// BuildMesh records the descriptor for its cell
func (m *Map) BuildMesh(d citygrid.Descriptor) (citygrid.RenderHandle, error) {
	e := &entry{d: d}
	m.cells[d.At] = e
	return e, nil
}

// DisposeMesh forgets the cell, if it's still the one the handle refers to
func (m *Map) DisposeMesh(h citygrid.RenderHandle) {
	e, ok := h.(*entry)
	if !ok {
		return
	}
	if m.cells[e.d.At] == e {
		delete(m.cells, e.d.At)
	}
}

// Len returns how many cells are drawn
func (m *Map) Len() int {
	return len(m.cells)
}

// Image draws every cell within frame (in cell units, see City.Frame) with
// cellSize pixels per cell.
func (m *Map) Image(frame r2.Rect, cellSize int, scheme *ColourScheme) image.Image {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if scheme == nil {
		scheme = DefaultScheme()
	}
	px := float64(cellSize)

	w := int(math.Ceil(frame.X.Length() * px))
	h := int(math.Ceil(frame.Y.Length() * px))
	ctx := gg.NewContext(w, h)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	// top left corner of cell p in pixels
	origin := func(p image.Point) (float64, float64) {
		return (float64(p.X) - frame.X.Lo) * px, (float64(p.Y) - frame.Y.Lo) * px
	}

	for p, e := range m.cells {
		x, y := origin(p)
		if x+px < 0 || y+px < 0 || x > float64(w) || y > float64(h) {
			continue
		}
		if e.d.IsRoad() {
			drawRoad(ctx, x, y, px, e.d.Tile.Connections(), scheme)
		} else {
			drawBuilding(ctx, x, y, px, e.d.Building, scheme)
		}
	}

	return ctx.Image()
}

// SavePNG draws the map (see Image) & writes it to the given path
func (m *Map) SavePNG(fpath string, frame r2.Rect, cellSize int, scheme *ColourScheme) error {
	im := m.Image(frame, cellSize, scheme)
	ctx := gg.NewContextForImage(im)
	return ctx.SavePNG(fpath)
}

// drawRoad draws a road as a hub in the centre of the cell with an arm out
// to every connected side, with a lane marking along each arm.
func drawRoad(ctx *gg.Context, x, y, px float64, conn citygrid.Connections, scheme *ColourScheme) {
	cx, cy := x+px/2, y+px/2

	ends := [][2]float64{}
	if conn.North {
		ends = append(ends, [2]float64{cx, y})
	}
	if conn.East {
		ends = append(ends, [2]float64{x + px, cy})
	}
	if conn.South {
		ends = append(ends, [2]float64{cx, y + px})
	}
	if conn.West {
		ends = append(ends, [2]float64{x, cy})
	}

	half := px * roadWidth / 2
	ctx.SetColor(scheme.Roads)
	ctx.DrawRectangle(cx-half, cy-half, half*2, half*2)
	ctx.Fill()

	ctx.SetLineCapButt()
	ctx.SetLineWidth(px * roadWidth)
	for _, end := range ends {
		ctx.DrawLine(cx, cy, end[0], end[1])
		ctx.Stroke()
	}

	ctx.SetColor(scheme.Lanes)
	ctx.SetLineWidth(math.Max(1, px*laneWidth))
	for _, end := range ends {
		ctx.DrawLine(cx, cy, end[0], end[1])
		ctx.Stroke()
	}
}

// drawBuilding draws a building as a square in the middle of the cell
func drawBuilding(ctx *gg.Context, x, y, px float64, kind citygrid.BuildingKind, scheme *ColourScheme) {
	col, ok := scheme.Buildings[kind]
	if !ok {
		return
	}
	inset := px * (1 - buildingSize) / 2
	ctx.SetColor(col)
	ctx.DrawRectangle(x+inset, y+inset, px-inset*2, px-inset*2)
	ctx.Fill()
}
