package scene

import (
	"github.com/voidshard/citygrid"

	"github.com/unixpickle/model3d/model3d"
)

// box returns an axis aligned box between min & max
func box(min, max model3d.Coord3D) *model3d.Mesh {
	// corners, bottom face then top face
	c := [8]model3d.Coord3D{
		model3d.XYZ(min.X, min.Y, min.Z),
		model3d.XYZ(max.X, min.Y, min.Z),
		model3d.XYZ(max.X, max.Y, min.Z),
		model3d.XYZ(min.X, max.Y, min.Z),
		model3d.XYZ(min.X, min.Y, max.Z),
		model3d.XYZ(max.X, min.Y, max.Z),
		model3d.XYZ(max.X, max.Y, max.Z),
		model3d.XYZ(min.X, max.Y, max.Z),
	}

	// quads wound counter clockwise when seen from outside
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // -y
		{2, 3, 7, 6}, // +y
		{1, 2, 6, 5}, // +x
		{3, 0, 4, 7}, // -x
	}

	mesh := model3d.NewMesh()
	for _, q := range quads {
		mesh.Add(&model3d.Triangle{c[q[0]], c[q[1]], c[q[2]]})
		mesh.Add(&model3d.Triangle{c[q[0]], c[q[2]], c[q[3]]})
	}
	return mesh
}

// roadMesh returns a road cell (in local 0-1 coords) for the given connections.
//
// The slab covers the whole cell, sidewalks run along every side without a
// connection & lane markings run from the centre out to every connected side.
func roadMesh(cfg *Config, conn citygrid.Connections) *model3d.Mesh {
	mesh := box(model3d.XYZ(0, 0, 0), model3d.XYZ(1, 1, cfg.RoadHeight))

	top := cfg.RoadHeight
	walk := cfg.SidewalkWidth
	if !conn.North {
		mesh.AddMesh(box(model3d.XYZ(0, 0, top), model3d.XYZ(1, walk, top+cfg.SidewalkHeight)))
	}
	if !conn.South {
		mesh.AddMesh(box(model3d.XYZ(0, 1-walk, top), model3d.XYZ(1, 1, top+cfg.SidewalkHeight)))
	}
	if !conn.West {
		mesh.AddMesh(box(model3d.XYZ(0, 0, top), model3d.XYZ(walk, 1, top+cfg.SidewalkHeight)))
	}
	if !conn.East {
		mesh.AddMesh(box(model3d.XYZ(1-walk, 0, top), model3d.XYZ(1, 1, top+cfg.SidewalkHeight)))
	}

	lo := 0.5 - cfg.LaneWidth/2
	hi := 0.5 + cfg.LaneWidth/2
	lane := top + cfg.LaneHeight
	if conn.North {
		mesh.AddMesh(box(model3d.XYZ(lo, 0, top), model3d.XYZ(hi, hi, lane)))
	}
	if conn.South {
		mesh.AddMesh(box(model3d.XYZ(lo, lo, top), model3d.XYZ(hi, 1, lane)))
	}
	if conn.West {
		mesh.AddMesh(box(model3d.XYZ(0, lo, top), model3d.XYZ(hi, hi, lane)))
	}
	if conn.East {
		mesh.AddMesh(box(model3d.XYZ(lo, lo, top), model3d.XYZ(1, hi, lane)))
	}

	return mesh
}

// buildingMesh returns a building (in local 0-1 coords).
// A small porch marks the side the building faces; rotation 0 faces north
// & each step turns a quarter clockwise.
func buildingMesh(cfg *Config, kind citygrid.BuildingKind, rot citygrid.Rotation) *model3d.Mesh {
	in := cfg.BuildingInset
	height := cfg.Heights[kind]
	mesh := box(model3d.XYZ(in, in, 0), model3d.XYZ(1-in, 1-in, height))

	porch := height / 4
	switch rot.Normalize() {
	case 0:
		mesh.AddMesh(box(model3d.XYZ(0.4, 0, 0), model3d.XYZ(0.6, in, porch)))
	case 1:
		mesh.AddMesh(box(model3d.XYZ(1-in, 0.4, 0), model3d.XYZ(1, 0.6, porch)))
	case 2:
		mesh.AddMesh(box(model3d.XYZ(0.4, 1-in, 0), model3d.XYZ(0.6, 1, porch)))
	case 3:
		mesh.AddMesh(box(model3d.XYZ(0, 0.4, 0), model3d.XYZ(in, 0.6, porch)))
	}
	return mesh
}

// translated returns a copy of mesh moved by offset
func translated(mesh *model3d.Mesh, offset model3d.Coord3D) *model3d.Mesh {
	out := model3d.NewMesh()
	for _, t := range mesh.TriangleSlice() {
		out.Add(&model3d.Triangle{t[0].Add(offset), t[1].Add(offset), t[2].Add(offset)})
	}
	return out
}
