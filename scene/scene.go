// Package scene renders a city as 3D meshes, one per occupied cell.
//
// Cell (x,z) occupies x..x+1 on the X axis & z..z+1 on the Y axis of the
// output; Z is up.
package scene

import (
	"fmt"
	"image"
	"io/ioutil"

	"github.com/voidshard/citygrid"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

var (
	// ErrInvalidDescriptor is returned when asked to build something we don't understand
	ErrInvalidDescriptor = fmt.Errorf("descriptor is neither a valid road nor building")
)

// Node is a mesh placed in the scene
type Node struct {
	// At is the cell the node sits on
	At image.Point

	// Descriptor is what the node was built from
	Descriptor citygrid.Descriptor

	// Mesh is the node in local cell coords (0-1), it may be shared
	// between nodes & must not be modified
	Mesh *model3d.Mesh
}

// Scene is a citygrid.Renderer that keeps a model3d mesh per cell
type Scene struct {
	cfg   *Config
	nodes []*Node

	// road meshes by Connections.Mask()
	roads map[uint8]*model3d.Mesh
}

// New returns an empty scene. A nil config uses DefaultConfig()
func New(cfg *Config) *Scene {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scene{
		cfg:   cfg,
		nodes: []*Node{},
		roads: map[uint8]*model3d.Mesh{},
	}
}

// BuildMesh builds & adds a node to the scene.
// Road meshes are cached by connection pattern so each is built only once.
func (s *Scene) BuildMesh(d citygrid.Descriptor) (citygrid.RenderHandle, error) {
	var mesh *model3d.Mesh

	if d.IsRoad() {
		if !d.Tile.Valid() {
			return nil, fmt.Errorf("%w: road tile %q", ErrInvalidDescriptor, d.Tile)
		}
		mask := d.Tile.Connections().Mask()
		cached, ok := s.roads[mask]
		if !ok {
			cached = roadMesh(s.cfg, d.Tile.Connections())
			s.roads[mask] = cached
		}
		mesh = cached
	} else {
		if !d.Building.Valid() {
			return nil, fmt.Errorf("%w: building kind %q", ErrInvalidDescriptor, d.Building)
		}
		mesh = buildingMesh(s.cfg, d.Building, d.Rotation)
	}

	n := &Node{At: d.At, Descriptor: d, Mesh: mesh}
	s.nodes = append(s.nodes, n)
	return n, nil
}

// DisposeMesh removes a node from the scene. Unknown handles are ignored.
func (s *Scene) DisposeMesh(h citygrid.RenderHandle) {
	n, ok := h.(*Node)
	if !ok {
		return
	}
	for i, other := range s.nodes {
		if other == n {
			essentials.UnorderedDelete(&s.nodes, i)
			return
		}
	}
}

// Nodes returns every node currently in the scene, in no particular order
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Mesh returns every node merged into a single mesh in world coords
func (s *Scene) Mesh() *model3d.Mesh {
	mesh := model3d.NewMesh()
	for _, n := range s.nodes {
		mesh.AddMesh(translated(n.Mesh, model3d.XYZ(float64(n.At.X), float64(n.At.Y), 0)))
	}
	return mesh
}

// SaveSTL writes the merged scene to the given path as an STL file
func (s *Scene) SaveSTL(fpath string) error {
	return ioutil.WriteFile(fpath, s.Mesh().EncodeSTL(), 0644)
}
