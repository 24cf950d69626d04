package citygrid

import (
	"fmt"
	"image"
	"testing"
)

var errMockRender = fmt.Errorf("mock renderer refused")

// MockRenderer hands out int handles & remembers what it was asked to do
type MockRenderer struct {
	next     int
	live     map[int]Descriptor
	built    []Descriptor
	disposed []int
	failOn   func(d Descriptor) bool
}

func newMockRenderer() *MockRenderer {
	return &MockRenderer{live: map[int]Descriptor{}}
}

func (m *MockRenderer) BuildMesh(d Descriptor) (RenderHandle, error) {
	if m.failOn != nil && m.failOn(d) {
		return nil, errMockRender
	}
	m.next++
	m.live[m.next] = d
	m.built = append(m.built, d)
	return m.next, nil
}

func (m *MockRenderer) DisposeMesh(h RenderHandle) {
	id, ok := h.(int)
	if !ok {
		return
	}
	delete(m.live, id)
	m.disposed = append(m.disposed, id)
}

// reset forgets what has been built & disposed so far (live meshes are kept)
func (m *MockRenderer) reset() {
	m.built = nil
	m.disposed = nil
}

// MockLogger stores messages for verification in tests
type MockLogger struct {
	messages []string
}

func (m *MockLogger) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

// newTestCity returns a city on the default field with a mock renderer & logger
func newTestCity(t *testing.T) (*City, *MockRenderer, *MockLogger) {
	t.Helper()
	r := newMockRenderer()
	l := &MockLogger{}
	c, err := New(&Config{Renderer: r, Logger: l})
	if err != nil {
		t.Fatal(err)
	}
	return c, r, l
}

// mustRoad places a road or fails the test
func mustRoad(t *testing.T, c *City, x, z int) *RoadCell {
	t.Helper()
	r, err := c.TryPlaceRoad(image.Pt(x, z), 0)
	if err != nil {
		t.Fatalf("failed to place road at (%d,%d): %v", x, z, err)
	}
	return r
}

// tileAt returns the tile at x,z or fails the test if there is no road
func tileAt(t *testing.T, c *City, x, z int) RoadTile {
	t.Helper()
	r := c.Road(image.Pt(x, z))
	if r == nil {
		t.Fatalf("expected a road at (%d,%d)", x, z)
	}
	return r.Tile
}

// checkTileInvariant fails if any connected road's tile disagrees with its neighbours
func checkTileInvariant(t *testing.T, c *City) {
	t.Helper()
	for _, r := range c.Roads() {
		conn := c.grid.Connections(r.At)
		if conn.Count() == 0 {
			if r.Tile != StraightH && r.Tile != StraightV {
				t.Errorf("isolated road at %v has tile %s", r.At, r.Tile)
			}
			continue
		}
		if conn.Count() == 1 {
			// a dead end is drawn as the straight running along its only connection
			implied := r.Tile.Connections()
			straight := r.Tile == StraightH || r.Tile == StraightV
			if !straight || (conn.North && !implied.North) || (conn.East && !implied.East) ||
				(conn.South && !implied.South) || (conn.West && !implied.West) {
				t.Errorf("dead end road at %v has tile %s but connections %+v", r.At, r.Tile, conn)
			}
			continue
		}
		if r.Tile.Connections() != conn {
			t.Errorf("road at %v has tile %s but connections %+v", r.At, r.Tile, conn)
		}
	}
}
