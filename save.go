package citygrid

import (
	"encoding/json"
	"fmt"
	"image"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
)

// SaveData is the persisted form of a city.
// Cells are stored as plain records; road tiles are kept for reference but
// are re-derived from adjacency on load (except for isolated roads).
type SaveData struct {
	Timestamp       int64            `json:"timestamp"` // unix millis
	CityName        string           `json:"cityName,omitempty"`
	CityDescription string           `json:"cityDescription,omitempty"`
	Stats           SaveStats        `json:"stats"`
	Buildings       []BuildingRecord `json:"buildings"`
	Roads           []RoadRecord     `json:"roads"`
}

// SaveStats is a summary kept alongside saved cells, mostly for listing saves
type SaveStats struct {
	Population           int `json:"population"`
	ResidentialBuildings int `json:"residentialBuildings"`
	CommercialBuildings  int `json:"commercialBuildings"`
	IndustrialBuildings  int `json:"industrialBuildings"`
	Roads                int `json:"roads"`
}

// BuildingRecord is a saved building. Pointers let us tell missing from zero.
type BuildingRecord struct {
	X        *int   `json:"x"`
	Z        *int   `json:"z"`
	Type     string `json:"type"`
	Rotation *int   `json:"rotation,omitempty"`
}

// RoadRecord is a saved road; RoadType is RoadTile.ID()
type RoadRecord struct {
	X        *int `json:"x"`
	Z        *int `json:"z"`
	RoadType *int `json:"roadType,omitempty"`
}

// LoadReport says what happened during a load
type LoadReport struct {
	Roads     int
	Buildings int
	Skipped   int
}

// rawSave lets us decode records one at a time so a single bad record
// doesn't fail the whole file
type rawSave struct {
	SaveData
	Buildings []json.RawMessage `json:"buildings"`
	Roads     []json.RawMessage `json:"roads"`
}

// Snapshot returns the city as SaveData
func (c *City) Snapshot() *SaveData {
	data := &SaveData{
		Timestamp:       time.Now().UnixMilli(),
		CityName:        c.Name,
		CityDescription: c.Description,
		Stats: SaveStats{
			Population:           int(c.Stats.Population),
			ResidentialBuildings: c.Stats.Count(Residential),
			CommercialBuildings:  c.Stats.Count(Commercial),
			IndustrialBuildings:  c.Stats.Count(Industrial),
			Roads:                c.Stats.Roads,
		},
		Buildings: []BuildingRecord{},
		Roads:     []RoadRecord{},
	}

	for _, b := range c.grid.Buildings() {
		data.Buildings = append(data.Buildings, BuildingRecord{
			X:        intPtr(b.At.X),
			Z:        intPtr(b.At.Y),
			Type:     string(b.Kind),
			Rotation: intPtr(int(b.Rotation)),
		})
	}
	for _, r := range c.grid.Roads() {
		data.Roads = append(data.Roads, RoadRecord{
			X:        intPtr(r.At.X),
			Z:        intPtr(r.At.Y),
			RoadType: intPtr(r.Tile.ID()),
		})
	}

	return data
}

// JSON returns the city snapshot as json.
func (c *City) JSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// SaveJSON writes a json file to the given path.
func (c *City) SaveJSON(fpath string) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// LoadJSON replaces the city with the json encoded SaveData.
// Records that can't be decoded are skipped rather than failing the load.
func (c *City) LoadJSON(data []byte) (*LoadReport, error) {
	raw := &rawSave{}
	err := json.Unmarshal(data, raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode save")
	}

	save := &raw.SaveData
	skipped := 0

	save.Roads = make([]RoadRecord, 0, len(raw.Roads))
	for i, msg := range raw.Roads {
		rec := RoadRecord{}
		if err := json.Unmarshal(msg, &rec); err != nil {
			c.cfg.Logger.Printf("skipping road record %d: %v", i, err)
			skipped++
			continue
		}
		save.Roads = append(save.Roads, rec)
	}

	save.Buildings = make([]BuildingRecord, 0, len(raw.Buildings))
	for i, msg := range raw.Buildings {
		rec := BuildingRecord{}
		if err := json.Unmarshal(msg, &rec); err != nil {
			c.cfg.Logger.Printf("skipping building record %d: %v", i, err)
			skipped++
			continue
		}
		save.Buildings = append(save.Buildings, rec)
	}

	report := c.Load(save)
	report.Skipped += skipped
	return report, nil
}

// Load replaces the city with the given SaveData.
//
// Roads are replayed first, through the same path as live placement, then
// buildings. Bad records are logged & skipped. History is cleared & the
// city is considered saved afterwards.
func (c *City) Load(data *SaveData) *LoadReport {
	c.Clear()
	c.Name = data.CityName
	c.Description = data.CityDescription

	report := &LoadReport{}

	for i, rec := range data.Roads {
		p, hint, err := rec.decode()
		if err == nil {
			_, err = c.placeRoad(p, hint)
		}
		if err != nil {
			c.cfg.Logger.Printf("skipping road record %d: %v", i, err)
			report.Skipped++
			continue
		}
		report.Roads++
	}

	for i, rec := range data.Buildings {
		p, kind, rot, err := rec.decode()
		if err == nil {
			_, err = c.placeBuilding(kind, p, rot)
		}
		if err != nil {
			c.cfg.Logger.Printf("skipping building record %d: %v", i, err)
			report.Skipped++
			continue
		}
		report.Buildings++
	}

	c.Stats.Population = float64(data.Stats.Population)
	c.dirty = false
	return report
}

// decode validates a road record
func (r RoadRecord) decode() (image.Point, Rotation, error) {
	if r.X == nil || r.Z == nil {
		return image.Point{}, 0, fmt.Errorf("road record missing coordinates")
	}
	p := image.Pt(*r.X, *r.Z)
	if r.RoadType == nil {
		return p, 0, nil
	}
	tile, ok := RoadTileForID(*r.RoadType)
	if !ok {
		return p, 0, fmt.Errorf("unknown road type %d", *r.RoadType)
	}
	return p, hintForTile(tile), nil
}

// decode validates a building record
func (b BuildingRecord) decode() (image.Point, BuildingKind, Rotation, error) {
	if b.X == nil || b.Z == nil {
		return image.Point{}, "", 0, fmt.Errorf("building record missing coordinates")
	}
	kind, err := ParseBuildingKind(b.Type)
	if err != nil {
		return image.Point{}, "", 0, err
	}
	rot := Rotation(0)
	if b.Rotation != nil {
		rot = Rotation(*b.Rotation)
		if !rot.Valid() {
			return image.Point{}, "", 0, fmt.Errorf("rotation %d outside 0-3", *b.Rotation)
		}
	}
	return image.Pt(*b.X, *b.Z), kind, rot, nil
}

func intPtr(i int) *int {
	return &i
}
