package citygrid

import (
	"image"
)

// RenderHandle is an opaque reference to something a Renderer has built.
// The city never looks inside it, it only hands it back to DisposeMesh.
type RenderHandle interface{}

// Descriptor tells a Renderer what to build for a single cell.
// Exactly one of Tile or Building is set.
type Descriptor struct {
	// cell the mesh belongs to
	At image.Point

	// road tile variant, empty for buildings
	Tile RoadTile

	// building kind & facing, empty for roads
	Building BuildingKind
	Rotation Rotation
}

// IsRoad returns if the descriptor is for a road tile
func (d Descriptor) IsRoad() bool {
	return d.Tile != ""
}

// Renderer is implemented by whatever draws the city.
// We have two questions only;
// - build something for this cell (road tile or building)
// - throw away something we built earlier
//
// See the scene & citymap packages for implementations.
type Renderer interface {
	// BuildMesh creates a representation of the given descriptor.
	// An error here aborts the placement that asked for it.
	BuildMesh(d Descriptor) (RenderHandle, error)

	// DisposeMesh releases a handle returned by BuildMesh.
	DisposeMesh(h RenderHandle)
}

// NopRenderer builds nothing. Useful for headless cities & tests.
type NopRenderer struct{}

// BuildMesh returns a nil handle
func (NopRenderer) BuildMesh(d Descriptor) (RenderHandle, error) {
	return nil, nil
}

// DisposeMesh does nothing
func (NopRenderer) DisposeMesh(h RenderHandle) {}

// Logger is the minimal logging interface we need; *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(format string, v ...interface{}) {}
