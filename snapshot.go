package citygrid

import (
	"fmt"
	"image"

	"github.com/voidshard/citygrid/internal/encoding"

	"github.com/pkg/errors"
)

const (
	tagRoad     = 1
	tagBuilding = 2
)

var (
	buildingKindIndex = map[BuildingKind]uint8{
		Residential: 0,
		Commercial:  1,
		Industrial:  2,
	}
)

// MarshalBinary encodes every occupied cell in a compact fixed width format.
//
// Roads store their tile id, buildings store kind & rotation packed into a
// single byte (kind << 2 | rotation).
func (c *City) MarshalBinary() ([]byte, error) {
	records := []encoding.Record{}
	for _, r := range c.grid.Roads() {
		records = append(records, encoding.Record{
			X:     int16(r.At.X),
			Z:     int16(r.At.Y),
			Tag:   tagRoad,
			Value: uint8(r.Tile.ID()),
		})
	}
	for _, b := range c.grid.Buildings() {
		records = append(records, encoding.Record{
			X:     int16(b.At.X),
			Z:     int16(b.At.Y),
			Tag:   tagBuilding,
			Value: buildingKindIndex[b.Kind]<<2 | uint8(b.Rotation),
		})
	}
	if len(records) > 0xFFFF {
		return nil, fmt.Errorf("too many cells to encode: %d", len(records))
	}
	return encoding.EncodeRecords(records), nil
}

// UnmarshalBinary replaces the city with the output of MarshalBinary.
//
// Unlike Load this doesn't replay placements one by one; every cell is set
// with its stored tile & then a single classification pass fixes up any road
// whose tile doesn't match its neighbours. Bad records are logged & skipped.
func (c *City) UnmarshalBinary(data []byte) error {
	records, err := encoding.DecodeRecords(data)
	if err != nil {
		return errors.Wrap(err, "failed to decode snapshot")
	}

	c.Clear()
	for i, rec := range records {
		err := c.setRecord(rec)
		if err != nil {
			c.cfg.Logger.Printf("skipping snapshot record %d: %v", i, err)
		}
	}

	c.roads.reclassifyAll()
	c.dirty = false
	return nil
}

// setRecord writes a single record straight into the grid
func (c *City) setRecord(rec encoding.Record) error {
	p := image.Pt(int(rec.X), int(rec.Z))
	if !p.In(c.cfg.Bounds) {
		return placementErr(OutOfBounds, p)
	}
	if c.grid.HasAny(p) {
		return placementErr(CellOccupied, p)
	}

	switch rec.Tag {
	case tagRoad:
		tile, ok := RoadTileForID(int(rec.Value))
		if !ok {
			return fmt.Errorf("unknown road type %d", rec.Value)
		}
		handle, err := c.cfg.Renderer.BuildMesh(Descriptor{At: p, Tile: tile})
		if err != nil {
			return err
		}
		c.grid.SetRoad(&RoadCell{At: p, Tile: tile, Handle: handle})
		c.Stats.Roads++
	case tagBuilding:
		kind, ok := buildingKindForIndex(rec.Value >> 2)
		if !ok {
			return fmt.Errorf("unknown building kind %d", rec.Value>>2)
		}
		rot := Rotation(rec.Value & 0x3)
		handle, err := c.cfg.Renderer.BuildMesh(Descriptor{At: p, Building: kind, Rotation: rot})
		if err != nil {
			return err
		}
		c.grid.SetBuilding(&BuildingCell{At: p, Kind: kind, Rotation: rot, Handle: handle})
		c.Stats.increment(kind)
	default:
		return fmt.Errorf("unknown record tag %d", rec.Tag)
	}
	return nil
}

// buildingKindForIndex is the inversion of buildingKindIndex
func buildingKindForIndex(i uint8) (BuildingKind, bool) {
	for k, v := range buildingKindIndex {
		if v == i {
			return k, true
		}
	}
	return "", false
}
